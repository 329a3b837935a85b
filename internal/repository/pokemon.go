package repository

import (
	"context"

	"pokemon-teams-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PokemonRepository handles database operations for pokemons
type PokemonRepository struct {
	db *gorm.DB
}

// NewPokemonRepository creates a new pokemon repository
func NewPokemonRepository(db *gorm.DB) *PokemonRepository {
	return &PokemonRepository{db: db}
}

// GetByName retrieves a pokemon by its canonical name
func (r *PokemonRepository) GetByName(ctx context.Context, name string) (*models.Pokemon, error) {
	var pokemon models.Pokemon
	err := r.db.WithContext(ctx).First(&pokemon, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &pokemon, nil
}

// GetByID retrieves a pokemon by its catalog ID
func (r *PokemonRepository) GetByID(ctx context.Context, id int) (*models.Pokemon, error) {
	var pokemon models.Pokemon
	err := r.db.WithContext(ctx).First(&pokemon, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pokemon, nil
}

// CreateIfAbsent inserts the pokemon unless a row with the same ID exists,
// then returns the stored row. Concurrent inserts of the same ID converge.
func (r *PokemonRepository) CreateIfAbsent(ctx context.Context, pokemon *models.Pokemon) (*models.Pokemon, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(pokemon).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, pokemon.ID)
}
