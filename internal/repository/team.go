package repository

import (
	"context"

	"pokemon-teams-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// CreateWithPokemons creates a team and one membership per pokemon ID in a single
// transaction, so a team is never visible without its members.
func (r *TeamRepository) CreateWithPokemons(ctx context.Context, owner string, pokemonIDs []int) (*models.Team, error) {
	team := models.Team{Owner: owner}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&team).Error; err != nil {
			return err
		}

		memberships := make([]models.TeamPokemon, len(pokemonIDs))
		for i, id := range pokemonIDs {
			memberships[i] = models.TeamPokemon{TeamID: team.ID, PokemonID: id}
		}
		if len(memberships) > 0 {
			if err := tx.Omit(clause.Associations).Create(&memberships).Error; err != nil {
				return err
			}
		}

		team.Pokemons = memberships
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &team, nil
}

// GetWithPokemons retrieves a team with its pokemons
func (r *TeamRepository) GetWithPokemons(ctx context.Context, id uint) (*models.Team, error) {
	var team models.Team
	err := r.withPokemons(ctx).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAllWithPokemons retrieves every team with its pokemons, oldest first
func (r *TeamRepository) GetAllWithPokemons(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	err := r.withPokemons(ctx).Order("id").Find(&teams).Error
	return teams, err
}

// GetByOwnerWithPokemons retrieves the teams whose owner matches exactly
func (r *TeamRepository) GetByOwnerWithPokemons(ctx context.Context, owner string) ([]models.Team, error) {
	var teams []models.Team
	err := r.withPokemons(ctx).Where("owner = ?", owner).Order("id").Find(&teams).Error
	return teams, err
}

func (r *TeamRepository) withPokemons(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Pokemons", func(db *gorm.DB) *gorm.DB {
			return db.Order("team_pokemons.id")
		}).
		Preload("Pokemons.Pokemon")
}
