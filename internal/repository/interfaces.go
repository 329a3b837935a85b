package repository

import (
	"context"

	"pokemon-teams-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PokemonRepositoryInterface defines the interface for pokemon repository operations.
// Lookups return gorm.ErrRecordNotFound when no row matches.
type PokemonRepositoryInterface interface {
	GetByName(ctx context.Context, name string) (*models.Pokemon, error)
	GetByID(ctx context.Context, id int) (*models.Pokemon, error)
	CreateIfAbsent(ctx context.Context, pokemon *models.Pokemon) (*models.Pokemon, error)
}

// TeamRepositoryInterface defines the interface for team repository operations.
// Returned teams always carry their memberships with the referenced pokemon loaded.
type TeamRepositoryInterface interface {
	CreateWithPokemons(ctx context.Context, owner string, pokemonIDs []int) (*models.Team, error)
	GetWithPokemons(ctx context.Context, id uint) (*models.Team, error)
	GetAllWithPokemons(ctx context.Context) ([]models.Team, error)
	GetByOwnerWithPokemons(ctx context.Context, owner string) ([]models.Team, error)
}
