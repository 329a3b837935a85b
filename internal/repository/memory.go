package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"pokemon-teams-backend/internal/database/models"

	"github.com/hashicorp/go-memdb"
	"gorm.io/gorm"
)

const (
	pokemonTable     = "pokemon"
	teamTable        = "team"
	teamPokemonTable = "team_pokemon"

	indexID     = "id"
	indexName   = "name"
	indexOwner  = "owner"
	indexTeamID = "team_id"
)

func memorySchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			pokemonTable: {
				Name: pokemonTable,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
					indexName: {
						Name:    indexName,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Name"},
					},
				},
			},
			teamTable: {
				Name: teamTable,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.UintFieldIndex{Field: "ID"},
					},
					indexOwner: {
						Name:    indexOwner,
						Indexer: &memdb.StringFieldIndex{Field: "Owner"},
					},
				},
			},
			teamPokemonTable: {
				Name: teamPokemonTable,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.UintFieldIndex{Field: "ID"},
					},
					indexTeamID: {
						Name:    indexTeamID,
						Indexer: &memdb.UintFieldIndex{Field: "TeamID"},
					},
				},
			},
		},
	}
}

// MemoryStore keeps pokemons and teams in an indexed in-memory database.
// It mirrors the Postgres repositories, including gorm.ErrRecordNotFound on misses.
type MemoryStore struct {
	db           *memdb.MemDB
	nextTeamID   atomic.Uint64
	nextMemberID atomic.Uint64
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() (*MemoryStore, error) {
	db, err := memdb.NewMemDB(memorySchema())
	if err != nil {
		return nil, fmt.Errorf("create memdb: %w", err)
	}
	return &MemoryStore{db: db}, nil
}

// Pokemons returns a PokemonRepositoryInterface backed by the store
func (s *MemoryStore) Pokemons() *MemoryPokemonRepository {
	return &MemoryPokemonRepository{store: s}
}

// Teams returns a TeamRepositoryInterface backed by the store
func (s *MemoryStore) Teams() *MemoryTeamRepository {
	return &MemoryTeamRepository{store: s}
}

// MemoryPokemonRepository implements PokemonRepositoryInterface on a MemoryStore
type MemoryPokemonRepository struct {
	store *MemoryStore
}

// GetByName retrieves a pokemon by its canonical name
func (r *MemoryPokemonRepository) GetByName(ctx context.Context, name string) (*models.Pokemon, error) {
	txn := r.store.db.Txn(false)
	defer txn.Abort()
	return firstPokemon(txn, indexName, name)
}

// GetByID retrieves a pokemon by its catalog ID
func (r *MemoryPokemonRepository) GetByID(ctx context.Context, id int) (*models.Pokemon, error) {
	txn := r.store.db.Txn(false)
	defer txn.Abort()
	return firstPokemon(txn, indexID, id)
}

// CreateIfAbsent inserts the pokemon unless one with the same ID exists and returns the stored row
func (r *MemoryPokemonRepository) CreateIfAbsent(ctx context.Context, pokemon *models.Pokemon) (*models.Pokemon, error) {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	existing, err := firstPokemon(txn, indexID, pokemon.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	stored := *pokemon
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	if err := txn.Insert(pokemonTable, &stored); err != nil {
		return nil, fmt.Errorf("insert pokemon: %w", err)
	}
	txn.Commit()

	result := stored
	return &result, nil
}

// MemoryTeamRepository implements TeamRepositoryInterface on a MemoryStore
type MemoryTeamRepository struct {
	store *MemoryStore
}

// CreateWithPokemons creates a team and its memberships in one write transaction.
// Every referenced pokemon must already exist.
func (r *MemoryTeamRepository) CreateWithPokemons(ctx context.Context, owner string, pokemonIDs []int) (*models.Team, error) {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	team := &models.Team{Owner: owner}
	team.ID = uint(r.store.nextTeamID.Add(1))
	team.CreatedAt = time.Now().UTC()
	if err := txn.Insert(teamTable, team); err != nil {
		return nil, fmt.Errorf("insert team: %w", err)
	}

	memberships := make([]models.TeamPokemon, 0, len(pokemonIDs))
	for _, id := range pokemonIDs {
		pokemon, err := firstPokemon(txn, indexID, id)
		if err != nil {
			return nil, fmt.Errorf("pokemon %d referenced by team: %w", id, err)
		}
		membership := &models.TeamPokemon{
			ID:        uint(r.store.nextMemberID.Add(1)),
			TeamID:    team.ID,
			PokemonID: id,
		}
		if err := txn.Insert(teamPokemonTable, membership); err != nil {
			return nil, fmt.Errorf("insert team pokemon: %w", err)
		}
		withPokemon := *membership
		withPokemon.Pokemon = *pokemon
		memberships = append(memberships, withPokemon)
	}
	txn.Commit()

	result := *team
	result.Pokemons = memberships
	return &result, nil
}

// GetWithPokemons retrieves a team with its pokemons
func (r *MemoryTeamRepository) GetWithPokemons(ctx context.Context, id uint) (*models.Team, error) {
	txn := r.store.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(teamTable, indexID, id)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return loadTeam(txn, raw)
}

// GetAllWithPokemons retrieves every team with its pokemons, oldest first
func (r *MemoryTeamRepository) GetAllWithPokemons(ctx context.Context) ([]models.Team, error) {
	txn := r.store.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(teamTable, indexID)
	if err != nil {
		return nil, err
	}
	return collectTeams(txn, it)
}

// GetByOwnerWithPokemons retrieves the teams whose owner matches exactly
func (r *MemoryTeamRepository) GetByOwnerWithPokemons(ctx context.Context, owner string) ([]models.Team, error) {
	txn := r.store.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(teamTable, indexOwner, owner)
	if err != nil {
		return nil, err
	}
	return collectTeams(txn, it)
}

func firstPokemon(txn *memdb.Txn, index string, value interface{}) (*models.Pokemon, error) {
	raw, err := txn.First(pokemonTable, index, value)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, gorm.ErrRecordNotFound
	}
	pokemon, ok := raw.(*models.Pokemon)
	if !ok {
		return nil, fmt.Errorf("cannot cast to Pokemon")
	}
	result := *pokemon
	return &result, nil
}

func collectTeams(txn *memdb.Txn, it memdb.ResultIterator) ([]models.Team, error) {
	var teams []models.Team
	for raw := it.Next(); raw != nil; raw = it.Next() {
		team, err := loadTeam(txn, raw)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *team)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
	return teams, nil
}

func loadTeam(txn *memdb.Txn, raw interface{}) (*models.Team, error) {
	stored, ok := raw.(*models.Team)
	if !ok {
		return nil, fmt.Errorf("cannot cast to Team")
	}
	team := *stored

	it, err := txn.Get(teamPokemonTable, indexTeamID, team.ID)
	if err != nil {
		return nil, err
	}
	var memberships []models.TeamPokemon
	for rawMember := it.Next(); rawMember != nil; rawMember = it.Next() {
		membership, ok := rawMember.(*models.TeamPokemon)
		if !ok {
			return nil, fmt.Errorf("cannot cast to TeamPokemon")
		}
		pokemon, err := firstPokemon(txn, indexID, membership.PokemonID)
		if err != nil {
			return nil, fmt.Errorf("pokemon %d referenced by team %d: %w", membership.PokemonID, team.ID, err)
		}
		withPokemon := *membership
		withPokemon.Pokemon = *pokemon
		memberships = append(memberships, withPokemon)
	}
	sort.Slice(memberships, func(i, j int) bool { return memberships[i].ID < memberships[j].ID })
	team.Pokemons = memberships

	return &team, nil
}
