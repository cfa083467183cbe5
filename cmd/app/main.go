package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careshare/cmd"
	"careshare/internal/adapters/out/postgres"
	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/workflow"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 15 * time.Second

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("careshare: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "careshare",
		Short:         "Status workflow engine of the CareShare marketplace",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(
		newServeCommand(&envFile),
		newMigrateCommand(&envFile),
		newTokenCommand(&envFile),
		&cobra.Command{
			Use:   "version",
			Short: "Print the build version",
			Run: func(c *cobra.Command, _ []string) {
				fmt.Fprintln(c.OutOrStdout(), version)
			},
		},
	)
	return root
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

func newServeCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := cmd.LoadConfig(*envFile)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, config, newLogger())
		},
	}
}

func serve(ctx context.Context, config cmd.Config, logger *slog.Logger) error {
	app, err := cmd.NewCompositionRoot(config, logger)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return errors.Join(err, app.Close(context.Background()))
	}

	e := app.CreateRouter()
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "port", config.HTTPPort, "store", config.StoreDriver)
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort))
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err = <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	shutdownErr := e.Shutdown(shutdownCtx)
	jobManager.StopAll()
	return errors.Join(err, shutdownErr, app.Close(shutdownCtx))
}

func newMigrateCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the PostgreSQL schema",
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := cmd.LoadConfig(*envFile)
			if err != nil {
				return err
			}
			if config.StoreDriver != cmd.StoreDriverPostgres {
				return fmt.Errorf("migrate needs STORE_DRIVER=%s, got %q", cmd.StoreDriverPostgres, config.StoreDriver)
			}

			db, err := cmd.OpenDatabase(config)
			if err != nil {
				return err
			}
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				defer sqlDB.Close()
			}
			if err = postgres.AutoMigrate(db.WithContext(c.Context())); err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), "schema is up to date")
			return nil
		},
	}
}

// newTokenCommand mints a bearer token for local development. Production
// tokens are issued by the account service.
func newTokenCommand(envFile *string) *cobra.Command {
	var (
		userID string
		role   string
		ttl    time.Duration
	)

	command := &cobra.Command{
		Use:   "token",
		Short: "Issue a development bearer token",
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := cmd.LoadConfig(*envFile)
			if err != nil {
				return err
			}

			id := kernel.NewUUID()
			if userID != "" {
				if id, err = kernel.UUIDFromString(userID); err != nil {
					return err
				}
			}
			parsedRole, err := workflow.ParseRole(role)
			if err != nil {
				return err
			}
			actor, err := workflow.NewActor(id, parsedRole)
			if err != nil {
				return err
			}

			identity, err := cmd.NewIdentityProvider(config)
			if err != nil {
				return err
			}
			token, err := identity.IssueToken(actor, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), token)
			return nil
		},
	}
	command.Flags().StringVar(&userID, "user", "", "user id, a new one when empty")
	command.Flags().StringVar(&role, "role", "USER", "USER or ADMIN")
	command.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return command
}
