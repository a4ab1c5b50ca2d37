package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"calorietracker/docs" // swagger docs
	"calorietracker/internal/app"
	"calorietracker/internal/cache"
	"calorietracker/internal/config"
	"calorietracker/internal/db"
	"calorietracker/internal/seed"
	"calorietracker/internal/store"
	"calorietracker/pkg/logger"
)

// @title CalorieTracker API
// @version 1.0
// @description Calorie and macronutrient tracking API with JWT authentication.
// @host localhost:3000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.NewViper()
	var configFile string

	cmd := &cobra.Command{
		Use:           "server",
		Short:         "Run the calorie tracker API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "load config: %v\n", err)
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "path to a config file (yaml, json or toml)")
	flags.String("port", "", "HTTP listen port (SERVER_PORT)")
	flags.String("db-driver", "", "database driver: sqlite, mysql or postgres (DB_DRIVER)")
	flags.String("db-dsn", "", "database DSN or SQLite file path (DB_DSN)")
	bindFlag(v, "server_port", cmd, "port")
	bindFlag(v, "db_driver", cmd, "db-driver")
	bindFlag(v, "db_dsn", cmd, "db-dsn")

	return cmd
}

// bindFlag binds a flag onto viper. An unset flag falls through to env, file and defaults.
func bindFlag(v *viper.Viper, key string, cmd *cobra.Command, name string) {
	_ = v.BindPFlag(key, cmd.Flags().Lookup(name))
}

func run(parent context.Context, cfg *config.Config) error {
	log := logger.ForEnv(cfg.AppEnv)
	defer log.Sync() //nolint:errcheck

	if cfg.UsingDefaultSecret() {
		log.Warn("JWT_SECRET is not set, using the built-in default secret")
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Errorw("database init", "driver", cfg.DBDriver, "error", err)
		return err
	}

	st, err := store.New(gormDB)
	if err != nil {
		log.Errorw("create schema", "error", err)
		return err
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SeedOnStart {
		// Seed failures are logged; the server still starts.
		if _, err := seed.Run(ctx, st, log, nil); err != nil {
			log.Errorw("seed database", "error", err)
		}
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if cacheClient.Enabled() {
		if err := cacheClient.Ping(ctx); err != nil {
			log.Warnw("redis unreachable, continuing without cache", "addr", cfg.RedisAddr, "error", err)
		}
	}

	e := app.New(app.Deps{
		Store:     st,
		Cache:     cacheClient,
		Logger:    log,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
	})

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
	} else {
		docs.SwaggerInfo.Host = "localhost:" + cfg.ServerPort
	}
	log.Infof("Swagger documentation available at: http://%s/api-docs/index.html", docs.SwaggerInfo.Host)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.ServerPort
		log.Infow("server starting", "addr", addr, "driver", cfg.DBDriver)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Errorw("server start", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorw("graceful shutdown", "error", err)
		return err
	}
	return nil
}
