package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/warp/hostelr/api"
	"github.com/warp/hostelr/config"
	"github.com/warp/hostelr/hostel"
	"github.com/warp/hostelr/logger"
	"github.com/warp/hostelr/store/sqlite"
)

// openStore builds the logger and opens the store, seeding it when asked.
func openStore(ctx context.Context, cfg *config.Config) (*sqlite.Store, *zap.Logger, error) {
	log, err := logger.New(cfg.Log.Level, cfg.IsProduction())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := sqlite.New(cfg.Database.Path, sqlite.WithLogger(log.Named("store")))
	if err != nil {
		log.Sync()
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if cfg.Database.Seed {
		if _, err := store.Seed(ctx); err != nil {
			store.Close()
			log.Sync()
			return nil, nil, err
		}
	}
	return store, log, nil
}

func serveCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, log, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer log.Sync()
			defer store.Close()

			metrics := api.NewMetrics("hostelr")
			handler := api.NewHandler(store, metrics, log)
			handler.Reminders.CheckInterval = cfg.Reminder.Interval
			handler.Reminders.Start()
			defer handler.Reminders.Stop()

			server := &http.Server{
				Addr: fmt.Sprintf(":%d", cfg.Server.Port),
				Handler: api.NewRouter(handler, api.RouterOptions{
					AllowedOrigins: cfg.Server.AllowedOrigins,
					Metrics:        metrics,
				}),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			serverErr := make(chan error, 1)
			go func() {
				log.Info("server starting",
					zap.Int("port", cfg.Server.Port),
					zap.String("db", cfg.Database.Path))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
				close(serverErr)
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			select {
			case err := <-serverErr:
				if err != nil {
					return fmt.Errorf("server failed: %w", err)
				}
			case <-quit:
			}

			log.Info("shutting down server")
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}
			log.Info("server stopped")
			return nil
		},
	}
	cmd.Flags().IntVar(&cfg.Server.Port, "port", cfg.Server.Port, "HTTP server port")
	return cmd
}

func initCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the schema and seed an empty store",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg.Database.Seed = true
			store, log, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer log.Sync()
			defer store.Close()

			tenants, err := store.ListTenants(ctx)
			if err != nil {
				return err
			}
			rooms, err := store.ListRooms(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d tenants, %d rooms\n", cfg.Database.Path, len(tenants), len(rooms))
			return nil
		},
	}
}

func reconcileCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Create rooms and beds named by tenants but missing from the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, log, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer log.Sync()
			defer store.Close()

			results, err := store.ReconcileAll(cmd.Context())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-38s  %-38s  %-5s  %-5s\n", "Tenant", "Room", "+Room", "+Bed")
			for _, r := range results {
				fmt.Fprintf(out, "%-38s  %-38s  %-5t  %-5t\n", r.TenantID, r.RoomID, r.RoomCreated, r.BedCreated)
			}
			return err
		},
	}
}

func statsCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard summary as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, log, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer log.Sync()
			defer store.Close()

			rooms, err := store.ListRooms(ctx)
			if err != nil {
				return err
			}
			views := make([]hostel.RoomView, len(rooms))
			for i, room := range rooms {
				beds, err := store.ListBedsByRoom(ctx, room.ID)
				if err != nil {
					return err
				}
				views[i] = hostel.NewRoomView(room, beds)
			}
			tenants, err := store.ListTenants(ctx)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(hostel.Summarize(views, tenants, hostel.Clock(nil).Today()))
		},
	}
}
