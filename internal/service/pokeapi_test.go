package service_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "pokemon-teams-backend/internal/errors"
	"pokemon-teams-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPokeAPIClient_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/pokemon/pikachu":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":25,"name":"pikachu","weight":60,"height":4,"base_experience":112,"abilities":[]}`))
		case "/api/v2/pokemon/broken":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("upstream exploded"))
		case "/api/v2/pokemon/garbage":
			_, _ = w.Write([]byte(`not json`))
		case "/api/v2/pokemon/slow":
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(`{"id":1,"name":"slow"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := service.NewPokeAPIClient(server.URL+"/api/v2/", 5*time.Second)

	t.Run("found", func(t *testing.T) {
		p, err := client.Lookup(context.Background(), "pikachu")
		require.NoError(t, err)
		assert.Equal(t, 25, p.ID)
		assert.Equal(t, "pikachu", p.Name)
		assert.Equal(t, 60, p.Weight)
		assert.Equal(t, 4, p.Height)
	})

	t.Run("unknown name", func(t *testing.T) {
		p, err := client.Lookup(context.Background(), "not-a-real-pokemon-zzz")
		assert.Nil(t, p)
		assert.True(t, apperrors.IsNotFound(err))
		assert.ErrorIs(t, err, apperrors.ErrPokemonNotFound)
	})

	t.Run("server error", func(t *testing.T) {
		_, err := client.Lookup(context.Background(), "broken")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrCatalogUnavailable)
		assert.Contains(t, err.Error(), "status=500")
		assert.False(t, apperrors.IsNotFound(err))
	})

	t.Run("undecodable body", func(t *testing.T) {
		_, err := client.Lookup(context.Background(), "garbage")
		assert.ErrorIs(t, err, apperrors.ErrCatalogUnavailable)
	})

	t.Run("context deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := client.Lookup(ctx, "slow")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrCatalogUnavailable)
	})

	t.Run("unreachable host", func(t *testing.T) {
		dead := service.NewPokeAPIClient("http://127.0.0.1:1", time.Second)
		_, err := dead.Lookup(context.Background(), "pikachu")
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrCatalogUnavailable))
	})
}
