package root

import (
	"github.com/dinerozz/user-registry/cmd/migrate"
	"github.com/dinerozz/user-registry/config"
	"github.com/dinerozz/user-registry/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func GetRootCmd(config *config.Config, log *zap.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "user-registry",
		Short:         "User registry service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.RunServer(config, log)
		},
	})

	rootCmd.AddCommand(migrate.GetMigrateCmd(config.DB, log))

	return rootCmd
}
