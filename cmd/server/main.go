package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	_ "pokemon-teams-backend/docs" // This is needed for swag
)

//	@title			Pokemon Teams API
//	@version		1.0
//	@description	Create Pokemon teams from names resolved against PokeAPI, and list them by owner or id.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:3000
//	@BasePath	/api

var rootCmd = &cobra.Command{
	Use:          "pokemon-teams",
	Short:        "Pokemon Teams backend",
	Long:         "HTTP service that stores Pokemon teams, resolving pokemon names against a local store and PokeAPI",
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}
