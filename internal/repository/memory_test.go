package repository

import (
	"context"
	"sync"
	"testing"

	"pokemon-teams-backend/internal/database/models"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type MemoryStoreTestSuite struct {
	suite.Suite
	ctx      context.Context
	pokemons *MemoryPokemonRepository
	teams    *MemoryTeamRepository
}

func (s *MemoryStoreTestSuite) SetupTest() {
	store, err := NewMemoryStore()
	s.Require().NoError(err)
	s.ctx = context.Background()
	s.pokemons = store.Pokemons()
	s.teams = store.Teams()
}

func (s *MemoryStoreTestSuite) seed(pokemons ...models.Pokemon) {
	for i := range pokemons {
		_, err := s.pokemons.CreateIfAbsent(s.ctx, &pokemons[i])
		s.Require().NoError(err)
	}
}

func (s *MemoryStoreTestSuite) TestGetByName_Miss() {
	p, err := s.pokemons.GetByName(s.ctx, "pikachu")
	s.ErrorIs(err, gorm.ErrRecordNotFound)
	s.Nil(p)
}

func (s *MemoryStoreTestSuite) TestCreateIfAbsent_Idempotent() {
	first, err := s.pokemons.CreateIfAbsent(s.ctx, &models.Pokemon{ID: 25, Name: "pikachu", Weight: 60, Height: 4})
	s.Require().NoError(err)
	s.False(first.CreatedAt.IsZero())

	second, err := s.pokemons.CreateIfAbsent(s.ctx, &models.Pokemon{ID: 25, Name: "pikachu", Weight: 1, Height: 1})
	s.Require().NoError(err)
	s.Equal(60, second.Weight)
	s.Equal(4, second.Height)

	byName, err := s.pokemons.GetByName(s.ctx, "pikachu")
	s.Require().NoError(err)
	s.Equal(25, byName.ID)
	s.Equal(60, byName.Weight)
}

func (s *MemoryStoreTestSuite) TestCreateIfAbsent_ConcurrentDuplicatesConverge() {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.pokemons.CreateIfAbsent(s.ctx, &models.Pokemon{ID: 4, Name: "charmander", Weight: 85, Height: 6})
			s.NoError(err)
		}()
	}
	wg.Wait()

	p, err := s.pokemons.GetByID(s.ctx, 4)
	s.Require().NoError(err)
	s.Equal("charmander", p.Name)
}

func (s *MemoryStoreTestSuite) TestReturnedRecordsAreCopies() {
	s.seed(models.Pokemon{ID: 25, Name: "pikachu", Weight: 60, Height: 4})

	p, err := s.pokemons.GetByID(s.ctx, 25)
	s.Require().NoError(err)
	p.Weight = 999

	again, err := s.pokemons.GetByID(s.ctx, 25)
	s.Require().NoError(err)
	s.Equal(60, again.Weight)
}

func (s *MemoryStoreTestSuite) TestCreateWithPokemons_PreservesOrder() {
	s.seed(
		models.Pokemon{ID: 25, Name: "pikachu", Weight: 60, Height: 4},
		models.Pokemon{ID: 4, Name: "charmander", Weight: 85, Height: 6},
	)

	team, err := s.teams.CreateWithPokemons(s.ctx, "ash", []int{25, 4})
	s.Require().NoError(err)
	s.Equal(uint(1), team.ID)
	s.Equal("ash", team.Owner)

	loaded, err := s.teams.GetWithPokemons(s.ctx, team.ID)
	s.Require().NoError(err)
	list := loaded.PokemonList()
	s.Require().Len(list, 2)
	s.Equal("pikachu", list[0].Name)
	s.Equal("charmander", list[1].Name)
}

func (s *MemoryStoreTestSuite) TestCreateWithPokemons_UnknownPokemonWritesNothing() {
	s.seed(models.Pokemon{ID: 25, Name: "pikachu", Weight: 60, Height: 4})

	team, err := s.teams.CreateWithPokemons(s.ctx, "ash", []int{25, 9999})
	s.ErrorIs(err, gorm.ErrRecordNotFound)
	s.Nil(team)

	all, err := s.teams.GetAllWithPokemons(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *MemoryStoreTestSuite) TestGetWithPokemons_Miss() {
	team, err := s.teams.GetWithPokemons(s.ctx, 42)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
	s.Nil(team)
}

func (s *MemoryStoreTestSuite) TestGetByOwnerWithPokemons_ExactMatch() {
	s.seed(
		models.Pokemon{ID: 25, Name: "pikachu", Weight: 60, Height: 4},
		models.Pokemon{ID: 7, Name: "squirtle", Weight: 90, Height: 5},
	)
	_, err := s.teams.CreateWithPokemons(s.ctx, "ash", []int{25})
	s.Require().NoError(err)
	_, err = s.teams.CreateWithPokemons(s.ctx, "misty", []int{7})
	s.Require().NoError(err)
	_, err = s.teams.CreateWithPokemons(s.ctx, "ash", []int{7, 25})
	s.Require().NoError(err)

	teams, err := s.teams.GetByOwnerWithPokemons(s.ctx, "ash")
	s.Require().NoError(err)
	s.Require().Len(teams, 2)
	s.Equal(uint(1), teams[0].ID)
	s.Equal(uint(3), teams[1].ID)
	s.Equal("squirtle", teams[1].PokemonList()[0].Name)

	none, err := s.teams.GetByOwnerWithPokemons(s.ctx, "Ash")
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *MemoryStoreTestSuite) TestGetAllWithPokemons_OrderedByID() {
	s.seed(models.Pokemon{ID: 25, Name: "pikachu", Weight: 60, Height: 4})
	for _, owner := range []string{"ash", "misty", "brock"} {
		_, err := s.teams.CreateWithPokemons(s.ctx, owner, []int{25})
		s.Require().NoError(err)
	}

	teams, err := s.teams.GetAllWithPokemons(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(teams, 3)
	s.Equal("ash", teams[0].Owner)
	s.Equal("misty", teams[1].Owner)
	s.Equal("brock", teams[2].Owner)
}

func TestMemoryStoreTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreTestSuite))
}
