package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"pokemon-teams-backend/internal/database/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var pokemonColumns = []string{"id", "name", "weight", "height", "created_at"}

func TestPokemonRepository_GetByName(t *testing.T) {
	tests := []struct {
		name     string
		mockFunc func(sqlmock.Sqlmock)
		want     *models.Pokemon
		wantErr  error
	}{
		{
			name: "found",
			mockFunc: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`SELECT * FROM "pokemons" WHERE name = $1`).
					WithArgs("pikachu", sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows(pokemonColumns).AddRow(25, "pikachu", 60, 4, time.Now()))
			},
			want: &models.Pokemon{ID: 25, Name: "pikachu", Weight: 60, Height: 4},
		},
		{
			name: "not found",
			mockFunc: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`SELECT * FROM "pokemons" WHERE name = $1`).
					WithArgs("pikachu", sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows(pokemonColumns))
			},
			wantErr: gorm.ErrRecordNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.mockFunc(mock)

			repo := NewPokemonRepository(db)
			got, err := repo.GetByName(context.Background(), "pikachu")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want.ID, got.ID)
				assert.Equal(t, tt.want.Name, got.Name)
				assert.Equal(t, tt.want.Weight, got.Weight)
				assert.Equal(t, tt.want.Height, got.Height)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPokemonRepository_CreateIfAbsent(t *testing.T) {
	t.Run("inserts with on conflict do nothing and returns stored row", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "pokemons"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT * FROM "pokemons" WHERE id = $1`).
			WithArgs(4, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(pokemonColumns).AddRow(4, "charmander", 85, 6, time.Now()))

		repo := NewPokemonRepository(db)
		got, err := repo.CreateIfAbsent(context.Background(), &models.Pokemon{ID: 4, Name: "charmander", Weight: 85, Height: 6})

		require.NoError(t, err)
		assert.Equal(t, 4, got.ID)
		assert.Equal(t, "charmander", got.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing row is returned unchanged", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "pokemons"`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT * FROM "pokemons" WHERE id = $1`).
			WithArgs(4, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(pokemonColumns).AddRow(4, "charmander", 85, 6, time.Now()))

		repo := NewPokemonRepository(db)
		got, err := repo.CreateIfAbsent(context.Background(), &models.Pokemon{ID: 4, Name: "charmander", Weight: 1, Height: 1})

		require.NoError(t, err)
		assert.Equal(t, 85, got.Weight)
		assert.Equal(t, 6, got.Height)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure is returned", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "pokemons"`).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		repo := NewPokemonRepository(db)
		got, err := repo.CreateIfAbsent(context.Background(), &models.Pokemon{ID: 4, Name: "charmander"})

		require.Error(t, err)
		assert.Nil(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
