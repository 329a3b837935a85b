package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"pokemon-teams-backend/internal/database/models"
	apperrors "pokemon-teams-backend/internal/errors"
	"pokemon-teams-backend/internal/logger"
	"pokemon-teams-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	pokemons  PokemonServiceInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, pokemons PokemonServiceInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		pokemons:  pokemons,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	User string   `json:"user" yaml:"user" validate:"required,notblankedges" example:"ash"`
	Team []string `json:"team" yaml:"team" validate:"required,min=1,unique,dive,required" example:"pikachu,charmander"`
}

// CreateTeamResponse is returned after a team was stored
type CreateTeamResponse struct {
	Message string `json:"message" example:"Team created successfully"`
	TeamID  uint   `json:"teamId" example:"1"`
}

// PokemonResponse is the public view of a pokemon
type PokemonResponse struct {
	ID     int    `json:"id" example:"25"`
	Name   string `json:"name" example:"pikachu"`
	Weight int    `json:"weight" example:"60"`
	Height int    `json:"height" example:"4"`
}

// TeamResponse represents one team with its pokemons
type TeamResponse struct {
	TeamID   uint              `json:"teamId" example:"1"`
	Owner    string            `json:"owner" example:"ash"`
	Pokemons []PokemonResponse `json:"pokemons"`
}

// TeamSummary is a team inside GetAllTeamsResponse, keyed by its id
type TeamSummary struct {
	Owner    string            `json:"owner" example:"ash"`
	Pokemons []PokemonResponse `json:"pokemons"`
}

// GetAllTeamsResponse maps team id to its owner and pokemons
type GetAllTeamsResponse map[string]TeamSummary

const teamCreatedMessage = "Team created successfully"

// CreateTeam validates the request, resolves every pokemon and stores the team
func (s *TeamService) CreateTeam(ctx context.Context, req *CreateTeamRequest) (*CreateTeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationError(err)
	}

	pokemons, err := s.pokemons.FindMany(ctx, req.Team)
	if err != nil {
		if apperrors.IsValidation(err) || apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, s.internal(ctx, apperrors.MsgCreateTeamFailed, err)
	}

	ids := make([]int, len(pokemons))
	for i, p := range pokemons {
		ids[i] = p.ID
	}

	team, err := s.repo.CreateWithPokemons(ctx, req.User, ids)
	if err != nil {
		return nil, s.internal(ctx, apperrors.MsgCreateTeamFailed, err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":  team.ID,
		"owner":    team.Owner,
		"pokemons": len(ids),
	}).Info("Team created")

	return &CreateTeamResponse{
		Message: teamCreatedMessage,
		TeamID:  team.ID,
	}, nil
}

// GetAllTeams returns every team keyed by id. No teams at all is a not-found error.
func (s *TeamService) GetAllTeams(ctx context.Context) (GetAllTeamsResponse, error) {
	teams, err := s.repo.GetAllWithPokemons(ctx)
	if err != nil {
		return nil, s.internal(ctx, apperrors.MsgListAllTeamsFailed, err)
	}
	if len(teams) == 0 {
		return nil, apperrors.NewNotFoundErrorWithMessage("team", apperrors.MsgNoTeams)
	}

	response := make(GetAllTeamsResponse, len(teams))
	for i := range teams {
		response[strconv.FormatUint(uint64(teams[i].ID), 10)] = TeamSummary{
			Owner:    teams[i].Owner,
			Pokemons: toPokemonResponses(teams[i].PokemonList()),
		}
	}
	return response, nil
}

// GetTeamsByUser returns the teams owned by user, matched exactly
func (s *TeamService) GetTeamsByUser(ctx context.Context, user string) ([]TeamResponse, error) {
	teams, err := s.repo.GetByOwnerWithPokemons(ctx, user)
	if err != nil {
		return nil, s.internal(ctx, apperrors.MsgListUserTeamsFailed, err)
	}
	if len(teams) == 0 {
		return nil, apperrors.NewNotFoundErrorWithMessage("team", apperrors.MsgNoTeamsForUser)
	}

	response := make([]TeamResponse, len(teams))
	for i := range teams {
		response[i] = toTeamResponse(&teams[i])
	}
	return response, nil
}

// GetTeamByID returns a single team
func (s *TeamService) GetTeamByID(ctx context.Context, id uint) (*TeamResponse, error) {
	team, err := s.repo.GetWithPokemons(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundErrorWithMessage("team", apperrors.MsgTeamNotExists)
		}
		return nil, s.internal(ctx, apperrors.MsgGetTeamFailed, err)
	}

	response := toTeamResponse(team)
	return &response, nil
}

// internal logs the cause and hides it behind message
func (s *TeamService) internal(ctx context.Context, message string, err error) error {
	logger.WithContext(ctx).WithError(err).Error(message)
	return apperrors.NewInternalError(message, err)
}

func toTeamResponse(team *models.Team) TeamResponse {
	return TeamResponse{
		TeamID:   team.ID,
		Owner:    team.Owner,
		Pokemons: toPokemonResponses(team.PokemonList()),
	}
}

func toPokemonResponses(pokemons []models.Pokemon) []PokemonResponse {
	out := make([]PokemonResponse, len(pokemons))
	for i, p := range pokemons {
		out[i] = PokemonResponse{
			ID:     p.ID,
			Name:   p.Name,
			Weight: p.Weight,
			Height: p.Height,
		}
	}
	return out
}

// translateValidationError maps the first failed rule to its user-facing message
func translateValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}

	fe := validationErrs[0]
	switch {
	case fe.StructField() == "User" && fe.Tag() == "notblankedges":
		return apperrors.NewValidationError("user", apperrors.MsgUserBlankEdges)
	case fe.StructField() == "User":
		return apperrors.NewValidationError("user", apperrors.MsgUserEmpty)
	case fe.StructField() == "Team" && fe.Tag() == "unique":
		return apperrors.NewValidationError("team", apperrors.MsgTeamItemsNotUnique)
	case fe.StructField() == "Team":
		return apperrors.NewValidationError("team", apperrors.MsgTeamListEmpty)
	case strings.HasPrefix(fe.StructField(), "Team["):
		return apperrors.NewValidationError("team", apperrors.MsgTeamItemEmpty)
	default:
		return apperrors.NewValidationError(fe.Field(), fe.Error())
	}
}
