package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pageza/brewshare/backend/config"
)

// NewRootCommand creates the brewctl root command
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "brewctl",
		Short:         "BrewShare administration",
		Long:          "brewctl manages the BrewShare database: schema migrations and catalog seeding.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A missing .env file is fine; the environment may already be set
			_ = godotenv.Load()
		},
	}

	cmd.AddCommand(NewMigrateCommand())
	cmd.AddCommand(NewSeedCommand())

	return cmd
}

func loadConfig() (*config.Config, error) {
	return config.LoadConfig()
}
