package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"pokemon-teams-backend/internal/database/models"
	apperrors "pokemon-teams-backend/internal/errors"
	"pokemon-teams-backend/internal/logger"
	"pokemon-teams-backend/internal/metrics"
	"pokemon-teams-backend/internal/repository"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	separatorRun  = regexp.MustCompile(`[\s.:]+`)
	leadingDash   = regexp.MustCompile(`^-+`)
	apostrophes   = regexp.MustCompile(`'+`)
	trailingDash  = regexp.MustCompile(`-+$`)
)

// NormalizeName turns user input such as "  Mr. Mime " into the catalog key "mr-mime".
// The result is empty when the input holds only whitespace or separators.
func NormalizeName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = whitespaceRun.ReplaceAllString(name, " ")
	name = separatorRun.ReplaceAllString(name, "-")
	name = leadingDash.ReplaceAllString(name, "")
	name = apostrophes.ReplaceAllString(name, "")
	name = trailingDash.ReplaceAllString(name, "")
	return name
}

// PokemonService resolves pokemon names through the local store with the catalog as fallback
type PokemonService struct {
	repo           repository.PokemonRepositoryInterface
	catalog        PokemonLookup
	catalogTimeout time.Duration
	concurrency    int
}

// NewPokemonService creates a new pokemon service. catalogTimeout bounds each catalog
// call and concurrency bounds the lookups in flight for one FindMany.
func NewPokemonService(repo repository.PokemonRepositoryInterface, catalog PokemonLookup, catalogTimeout time.Duration, concurrency int) *PokemonService {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &PokemonService{
		repo:           repo,
		catalog:        catalog,
		catalogTimeout: catalogTimeout,
		concurrency:    concurrency,
	}
}

// FindOne resolves a single raw name. The bool reports whether the record came from
// the catalog and is therefore not stored yet.
func (s *PokemonService) FindOne(ctx context.Context, name string) (*models.Pokemon, bool, error) {
	canonical := NormalizeName(name)
	if canonical == "" {
		return nil, false, apperrors.NewValidationError("team", apperrors.MsgInvalidPokemonName)
	}
	return s.resolve(ctx, canonical)
}

// FindMany resolves every raw name or none. Blank names fail validation before any
// lookup. All lookups run to completion so the not-found error can list every miss.
// Catalog-sourced records are stored once the whole batch has resolved.
func (s *PokemonService) FindMany(ctx context.Context, names []string) ([]models.Pokemon, error) {
	canonical := make([]string, len(names))
	for i, raw := range names {
		canonical[i] = NormalizeName(raw)
		if canonical[i] == "" {
			return nil, apperrors.NewValidationError("team", apperrors.MsgInvalidPokemonName)
		}
	}

	resolved := make([]*models.Pokemon, len(names))
	fetched := make([]bool, len(names))
	failures := make([]error, len(names))

	// Tasks record their failure by index and always return nil, so one miss never
	// cancels its siblings.
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i := range canonical {
		g.Go(func() error {
			resolved[i], fetched[i], failures[i] = s.resolve(ctx, canonical[i])
			return nil
		})
	}
	_ = g.Wait()

	var missing []string
	for i, err := range failures {
		if err == nil {
			continue
		}
		if apperrors.IsInternal(err) {
			return nil, err
		}
		logger.WithContext(ctx).WithError(err).WithField("pokemon", canonical[i]).Info("Pokemon could not be resolved")
		missing = append(missing, names[i])
	}
	if len(missing) > 0 {
		return nil, apperrors.NewNotFoundErrorWithMessage("pokemon", apperrors.PokemonsNotFoundMessage(missing))
	}

	pokemons := make([]models.Pokemon, len(resolved))
	for i, pokemon := range resolved {
		if fetched[i] {
			stored, err := s.AddPokemon(ctx, pokemon)
			if err != nil {
				return nil, apperrors.NewInternalError(apperrors.MsgPokemonLookupFailed, err)
			}
			pokemon = stored
		}
		pokemons[i] = *pokemon
	}

	return pokemons, nil
}

// AddPokemon stores the pokemon unless its ID is already present and returns the stored row
func (s *PokemonService) AddPokemon(ctx context.Context, pokemon *models.Pokemon) (*models.Pokemon, error) {
	stored, err := s.repo.CreateIfAbsent(ctx, pokemon)
	if err != nil {
		return nil, fmt.Errorf("failed to store pokemon %d: %w", pokemon.ID, err)
	}
	return stored, nil
}

// resolve reads the store first and falls back to the catalog on a miss.
// Store failures come back as InternalError, catalog failures as NotFoundError
// or a wrapped ErrCatalogUnavailable.
func (s *PokemonService) resolve(ctx context.Context, name string) (*models.Pokemon, bool, error) {
	stored, err := s.repo.GetByName(ctx, name)
	switch {
	case err == nil:
		metrics.ObserveLookup(metrics.SourceStore, metrics.ResultHit)
		return stored, false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		metrics.ObserveLookup(metrics.SourceStore, metrics.ResultMiss)
	default:
		metrics.ObserveLookup(metrics.SourceStore, metrics.ResultError)
		return nil, false, apperrors.NewInternalError(apperrors.MsgPokemonLookupFailed, fmt.Errorf("read pokemon %q: %w", name, err))
	}

	lookupCtx := ctx
	if s.catalogTimeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, s.catalogTimeout)
		defer cancel()
	}

	pokemon, err := s.catalog.Lookup(lookupCtx, name)
	switch {
	case err == nil:
		metrics.ObserveLookup(metrics.SourceCatalog, metrics.ResultHit)
		return pokemon, true, nil
	case apperrors.IsNotFound(err):
		metrics.ObserveLookup(metrics.SourceCatalog, metrics.ResultMiss)
		return nil, false, apperrors.NewNotFoundErrorWithMessage("pokemon", fmt.Sprintf("Pokemon %s was not found.", name))
	default:
		metrics.ObserveLookup(metrics.SourceCatalog, metrics.ResultError)
		return nil, false, fmt.Errorf("catalog lookup %q: %w", name, err)
	}
}
