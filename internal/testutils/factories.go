package testutils

import (
	"time"

	"pokemon-teams-backend/internal/database/models"
)

// PokemonFactory provides methods to create test Pokemon data
type PokemonFactory struct{}

// NewPokemonFactory creates a new PokemonFactory
func NewPokemonFactory() *PokemonFactory {
	return &PokemonFactory{}
}

// Create returns pikachu
func (f *PokemonFactory) Create() *models.Pokemon {
	return &models.Pokemon{
		ID:        25,
		Name:      "pikachu",
		Weight:    60,
		Height:    4,
		CreatedAt: time.Now(),
	}
}

// Starters returns bulbasaur, charmander and squirtle
func (f *PokemonFactory) Starters() []*models.Pokemon {
	return []*models.Pokemon{
		{ID: 1, Name: "bulbasaur", Weight: 69, Height: 7},
		{ID: 4, Name: "charmander", Weight: 85, Height: 6},
		{ID: 7, Name: "squirtle", Weight: 90, Height: 5},
	}
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create returns an unsaved team owned by ash
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{CreatedAt: time.Now()},
		Owner:     "ash",
	}
}

// WithPokemons returns a team with id set and one membership per pokemon, in order
func (f *TeamFactory) WithPokemons(id uint, owner string, pokemons ...*models.Pokemon) *models.Team {
	team := f.Create()
	team.ID = id
	team.Owner = owner
	for i, p := range pokemons {
		team.Pokemons = append(team.Pokemons, models.TeamPokemon{
			ID:        uint(i + 1),
			TeamID:    id,
			PokemonID: p.ID,
			Pokemon:   *p,
		})
	}
	return team
}
