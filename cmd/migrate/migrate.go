package migrate

import (
	"errors"
	"github.com/dinerozz/user-registry/config"
	"github.com/dinerozz/user-registry/internal/repository"
	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func GetMigrateCmd(dbConfig config.DatabaseConfig, log *zap.Logger) *cobra.Command {
	var down bool

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := repository.NewRepository(dbConfig, log)
			if err != nil {
				return err
			}
			defer db.Close()

			err = repository.Migrate(db, down)
			switch {
			case errors.Is(err, migrate.ErrNoChange):
				if down {
					log.Warn("⚠️ No migrations to rollback.")
				} else {
					log.Warn("⚠️ No new migrations to apply.")
				}
				return nil
			case err != nil:
				return err
			case down:
				log.Info("✅ Migrations rolled back successfully!")
			default:
				log.Info("✅ Migrations applied successfully!")
			}
			return nil
		},
	}

	migrateCmd.Flags().BoolVarP(&down, "down", "d", false, "Rollback migrations")

	return migrateCmd
}
