package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hverr/drivedocs/pkg/blacklist"
	"github.com/hverr/drivedocs/pkg/config"
	"github.com/hverr/drivedocs/pkg/reconcile"
	"github.com/hverr/drivedocs/pkg/scan"
	"github.com/hverr/drivedocs/pkg/store"
)

func newSyncCommand() *cobra.Command {
	var useJSON bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Scan attached external drives and update the documentation",
		Long: "Scan the attached external drives and their project directories, " +
			"merge the result into the persisted documentation, and save it. " +
			"Drives documented from other machines are never removed by a sync.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			var st store.Store
			var bl blacklist.Blacklist
			if useJSON {
				st, bl = newJSONStore(cfg)
			} else {
				sheetsStore, err := newSheetsStore(ctx, cfg)
				if err != nil {
					return err
				}
				if bl, err = sheetsStore.Blacklist(ctx); err != nil {
					return err
				}
				st = sheetsStore
			}

			drives, err := scan.Scan(ctx)
			if err != nil {
				return err
			}
			if len(drives) == 0 {
				log.Info("no external drives found, documentation is not updated")
				return nil
			}

			if _, err := reconcile.Sync(ctx, st, drives, bl); err != nil {
				return err
			}
			log.Info("documentation successfully updated")
			return nil
		},
	}

	cmd.Flags().BoolVar(&useJSON, "json", false,
		"update the local JSON documentation instead of the shared spreadsheet")
	return cmd
}
