package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"calorietracker/internal/config"
	"calorietracker/internal/db"
	"calorietracker/internal/seed"
	"calorietracker/internal/store"
	"calorietracker/pkg/logger"
)

func main() {
	if err := newSeedCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newSeedCmd() *cobra.Command {
	v := config.NewViper()
	var configFile string

	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Load demonstration users and the default product catalog into an empty database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "load config: %v\n", err)
				return err
			}

			log := logger.ForEnv(cfg.AppEnv)
			defer log.Sync() //nolint:errcheck

			gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
			if err != nil {
				log.Errorw("failed to connect to database", "error", err)
				return err
			}
			st, err := store.New(gormDB)
			if err != nil {
				log.Errorw("failed to create schema", "error", err)
				return err
			}
			defer st.Close()

			res, err := seed.Run(cmd.Context(), st, log, nil)
			if err != nil {
				log.Errorw("seed failed", "error", err)
				return err
			}
			if res.Seeded {
				log.Infow("seed completed successfully", "users", res.Users, "products", res.Products)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "path to a config file")
	cmd.Flags().String("db-driver", "", "database driver: sqlite, mysql or postgres")
	cmd.Flags().String("db-dsn", "", "database DSN or SQLite file path")
	_ = v.BindPFlag("db_driver", cmd.Flags().Lookup("db-driver"))
	_ = v.BindPFlag("db_dsn", cmd.Flags().Lookup("db-dsn"))

	return cmd
}
