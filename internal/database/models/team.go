package models

// Team is a set of pokemons owned by a free-text user label
type Team struct {
	BaseModel
	Owner string `json:"owner" gorm:"size:255;not null;index"`

	// Relationships
	Pokemons []TeamPokemon `json:"pokemons,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamPokemon links one team to one pokemon. Duplicate pairs are not
// rejected here; request validation keeps team lists unique.
type TeamPokemon struct {
	ID        uint    `json:"-" gorm:"primaryKey;autoIncrement"`
	TeamID    uint    `json:"team_id" gorm:"not null;index"`
	PokemonID int     `json:"pokemon_id" gorm:"not null;index"`
	Pokemon   Pokemon `json:"pokemon" gorm:"foreignKey:PokemonID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for TeamPokemon
func (TeamPokemon) TableName() string {
	return "team_pokemons"
}

// PokemonList returns the team's pokemons in membership order
func (t *Team) PokemonList() []Pokemon {
	pokemons := make([]Pokemon, 0, len(t.Pokemons))
	for _, tp := range t.Pokemons {
		pokemons = append(pokemons, tp.Pokemon)
	}
	return pokemons
}
