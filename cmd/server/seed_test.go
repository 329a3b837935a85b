package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	apperrors "pokemon-teams-backend/internal/errors"
	"pokemon-teams-backend/internal/mocks"
	"pokemon-teams-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teams.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSeedFile(t *testing.T) {
	t.Run("parses teams", func(t *testing.T) {
		path := writeSeedFile(t, `
teams:
  - user: ash
    team: [pikachu, charmander]
  - user: misty
    team:
      - staryu
`)
		file, err := loadSeedFile(path)
		require.NoError(t, err)
		require.Len(t, file.Teams, 2)
		assert.Equal(t, "ash", file.Teams[0].User)
		assert.Equal(t, []string{"pikachu", "charmander"}, file.Teams[0].Team)
		assert.Equal(t, []string{"staryu"}, file.Teams[1].Team)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := loadSeedFile(writeSeedFile(t, "teams: []\n"))
		assert.ErrorIs(t, err, apperrors.ErrSeedFileHasNoTeams)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := loadSeedFile(writeSeedFile(t, "teams: [\n"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestSeedTeams(t *testing.T) {
	ctrl := gomock.NewController(t)
	creator := mocks.NewMockTeamServiceInterface(ctrl)
	ctx := context.Background()

	file := &SeedFile{Teams: []service.CreateTeamRequest{
		{User: "ash", Team: []string{"pikachu"}},
		{User: "gary", Team: []string{"missingno"}},
		{User: "misty", Team: []string{"staryu"}},
	}}

	gomock.InOrder(
		creator.EXPECT().CreateTeam(ctx, &file.Teams[0]).Return(&service.CreateTeamResponse{TeamID: 1}, nil),
		creator.EXPECT().CreateTeam(ctx, &file.Teams[1]).Return(nil, apperrors.NewNotFoundErrorWithMessage("pokemon", "not found")),
		creator.EXPECT().CreateTeam(ctx, &file.Teams[2]).Return(&service.CreateTeamResponse{TeamID: 2}, nil),
	)

	created, err := seedTeams(ctx, creator, file)
	assert.Equal(t, 2, created)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 teams")
}

func TestSeedTeamsAllSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	creator := mocks.NewMockTeamServiceInterface(ctrl)

	creator.EXPECT().CreateTeam(gomock.Any(), gomock.Any()).Return(&service.CreateTeamResponse{TeamID: 7}, nil).Times(2)

	created, err := seedTeams(context.Background(), creator, &SeedFile{Teams: []service.CreateTeamRequest{
		{User: "brock", Team: []string{"onix"}},
		{User: "brock", Team: []string{"geodude"}},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, created)
}

func TestSeedTeamsCancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	creator := mocks.NewMockTeamServiceInterface(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	creator.EXPECT().CreateTeam(ctx, gomock.Any()).Return(nil, context.Canceled)

	created, err := seedTeams(ctx, creator, &SeedFile{Teams: []service.CreateTeamRequest{{User: "ash", Team: []string{"pikachu"}}}})
	assert.Zero(t, created)
	assert.EqualError(t, err, "1 of 1 teams could not be seeded")
}
