package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"monetrix-dashboard/internal/config"
	"monetrix-dashboard/internal/database"
	"monetrix-dashboard/internal/repositories"
	"monetrix-dashboard/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newImportCommand() *cobra.Command {
	var clientID string
	var dir string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Store a per-bank feed directory as the client's latest snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := setupLogger(os.Stderr, cfg.Server)
			if dir == "" {
				dir = cfg.Feed.Directory
			}

			db, err := database.Initialize(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			banks, err := config.LoadBankDirectory(cfg.Feed.BankDirectoryPath)
			if err != nil {
				return err
			}

			svc, err := newServiceSet(cfg, repositories.NewFeedSnapshotRepository(db.DB), banks, prometheus.NewRegistry(), logger)
			if err != nil {
				return err
			}

			return runImport(cmd.Context(), svc.Feed, clientID, dir, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&clientID, "client", "", "client id the snapshot belongs to")
	cmd.Flags().StringVar(&dir, "dir", "", "directory of <bankCode>.json files (defaults to FEED_DIR)")
	_ = cmd.MarkFlagRequired("client")

	return cmd
}

func runImport(ctx context.Context, feedService services.FeedServiceInterface, clientID, dir string, out io.Writer) error {
	snapshot, err := feedService.ImportDirectory(ctx, clientID, dir)
	if err != nil {
		return fmt.Errorf("importing %s: %w", dir, err)
	}

	fmt.Fprintf(out, "stored snapshot %s for %s: %d accounts, %d transactions\n",
		snapshot.ID, snapshot.ClientID, len(snapshot.Accounts), len(snapshot.Transactions))
	return nil
}
