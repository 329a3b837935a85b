package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pokemon-teams-backend/internal/database/models"
	apperrors "pokemon-teams-backend/internal/errors"
	"pokemon-teams-backend/internal/logger"
	"pokemon-teams-backend/internal/metrics"
)

// PokeAPIClient looks pokemons up in the public PokeAPI catalog
type PokeAPIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewPokeAPIClient creates a catalog client. timeout bounds each HTTP round trip.
func NewPokeAPIClient(baseURL string, timeout time.Duration) *PokeAPIClient {
	return &PokeAPIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// pokeAPIPokemon is the subset of PokeAPI's /pokemon/{name} response we keep
type pokeAPIPokemon struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Weight int    `json:"weight"`
	Height int    `json:"height"`
}

// Lookup fetches one pokemon by canonical name. An unknown name yields
// apperrors.ErrPokemonNotFound; any other failure wraps apperrors.ErrCatalogUnavailable.
func (c *PokeAPIClient) Lookup(ctx context.Context, name string) (*models.Pokemon, error) {
	start := time.Now()
	pokemon, err := c.fetch(ctx, name)

	result := metrics.ResultHit
	switch {
	case apperrors.IsNotFound(err):
		result = metrics.ResultMiss
	case err != nil:
		result = metrics.ResultError
	}
	metrics.ObserveCatalogRequest(result, start)

	return pokemon, err
}

func (c *PokeAPIClient) fetch(ctx context.Context, name string) (*models.Pokemon, error) {
	fullURL := c.baseURL + "/pokemon/" + url.PathEscape(name)
	logger.WithContext(ctx).WithField("url", fullURL).Debug("Invoking PokeAPI")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.ErrPokemonNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status=%d body=%s", apperrors.ErrCatalogUnavailable, resp.StatusCode, string(body))
	}

	var payload pokeAPIPokemon
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", apperrors.ErrCatalogUnavailable, err)
	}
	if payload.ID <= 0 || payload.Name == "" {
		return nil, fmt.Errorf("%w: response for %q has no id or name", apperrors.ErrCatalogUnavailable, name)
	}

	return &models.Pokemon{
		ID:     payload.ID,
		Name:   payload.Name,
		Weight: payload.Weight,
		Height: payload.Height,
	}, nil
}
