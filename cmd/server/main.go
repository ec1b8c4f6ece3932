/*
main.go - Application entry point

PURPOSE:
  The hostelr command. Opens the SQLite record store and either serves the
  HTTP API or runs a one-shot maintenance command against it.

COMMANDS:
  serve      Start the HTTP API and the overdue reminder scanner
  init       Create the schema and seed sample data into an empty store
  reconcile  Create missing rooms/beds named by tenants
  stats      Print the dashboard summary as JSON

FLAGS (all commands):
  --db     SQLite database path, ":memory:" for a throwaway store
  --seed   Seed sample data when the store has no tenants
  --port   HTTP port (serve only)

  Flags override the environment (see config/config.go).

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Stop the reminder scanner
  4. Close database connection

EXAMPLES:
  hostelr serve --db=./data/hostel.db
  hostelr serve --db=":memory:" --port=3000
  hostelr stats

SEE ALSO:
  - api/server.go: Router configuration
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/warp/hostelr/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:           "hostelr",
		Short:         "PG hostel tenant, room, bed and payment records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&cfg.Database.Path, "db", cfg.Database.Path, "SQLite database path")
	rootCmd.PersistentFlags().BoolVar(&cfg.Database.Seed, "seed", cfg.Database.Seed, "seed sample data into an empty store")

	rootCmd.AddCommand(
		serveCmd(cfg),
		initCmd(cfg),
		reconcileCmd(cfg),
		statsCmd(cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
