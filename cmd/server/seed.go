package main

import (
	"context"
	"fmt"
	"os"

	"pokemon-teams-backend/internal/api/routes"
	"pokemon-teams-backend/internal/config"
	"pokemon-teams-backend/internal/database"
	apperrors "pokemon-teams-backend/internal/errors"
	"pokemon-teams-backend/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the teams listed in a YAML file",
	Long: `Create the teams listed in a YAML file, resolving every pokemon the same way the API does.

File format:

  teams:
    - user: ash
      team: [pikachu, charmander]`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "data/teams.yaml", "Path to the seed file")
}

// SeedFile is the YAML document read by the seed command
type SeedFile struct {
	Teams []service.CreateTeamRequest `yaml:"teams"`
}

// teamCreator is the part of the team service the seeder needs
type teamCreator interface {
	CreateTeam(ctx context.Context, req *service.CreateTeamRequest) (*service.CreateTeamResponse, error)
}

func loadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if len(file.Teams) == 0 {
		return nil, fmt.Errorf("%s: %w", path, apperrors.ErrSeedFileHasNoTeams)
	}

	return &file, nil
}

// seedTeams creates every team in file and keeps going past failures.
// It returns the number of teams created and an error if any team failed.
func seedTeams(ctx context.Context, creator teamCreator, file *SeedFile) (int, error) {
	created := 0
	failed := 0
	for i := range file.Teams {
		req := file.Teams[i]
		entry := logrus.WithFields(logrus.Fields{"user": req.User, "team": req.Team})

		resp, err := creator.CreateTeam(ctx, &req)
		if err != nil {
			failed++
			entry.WithError(err).Warn("Failed to seed team")
			continue
		}
		created++
		entry.WithField("team_id", resp.TeamID).Info("Seeded team")
	}

	if failed > 0 {
		return created, fmt.Errorf("%d of %d teams could not be seeded", failed, len(file.Teams))
	}
	return created, nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.StoreDriver == config.StoreDriverMemory {
		logrus.Warn("Seeding the memory store only lasts for the lifetime of this command")
	}

	file, err := loadSeedFile(seedFile)
	if err != nil {
		return err
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logrus.WithError(err).Warn("Failed to close database")
		}
	}()

	teamService, err := routes.NewTeamService(db, cfg)
	if err != nil {
		return err
	}

	created, err := seedTeams(cmd.Context(), teamService, file)
	logrus.WithField("created", created).Info("Seeding finished")
	return err
}
