package service

import (
	"context"

	"pokemon-teams-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PokemonLookup resolves a canonical name against a pokemon source.
// Implementations return apperrors.ErrPokemonNotFound for unknown names.
type PokemonLookup interface {
	Lookup(ctx context.Context, name string) (*models.Pokemon, error)
}

// PokemonServiceInterface defines the interface for pokemon resolution
type PokemonServiceInterface interface {
	FindOne(ctx context.Context, name string) (*models.Pokemon, bool, error)
	FindMany(ctx context.Context, names []string) ([]models.Pokemon, error)
	AddPokemon(ctx context.Context, pokemon *models.Pokemon) (*models.Pokemon, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	CreateTeam(ctx context.Context, req *CreateTeamRequest) (*CreateTeamResponse, error)
	GetAllTeams(ctx context.Context) (GetAllTeamsResponse, error)
	GetTeamsByUser(ctx context.Context, user string) ([]TeamResponse, error)
	GetTeamByID(ctx context.Context, id uint) (*TeamResponse, error)
}
