package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/hverr/drivedocs/pkg/blacklist"
	"github.com/hverr/drivedocs/pkg/config"
)

func newBlacklistCommand() *cobra.Command {
	var useJSON bool

	cmd := &cobra.Command{
		Use:   "blacklist",
		Short: "Print the exclusion lists the next sync would apply",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			var bl blacklist.Blacklist
			if useJSON {
				_, bl = newJSONStore(cfg)
			} else {
				sheetsStore, err := newSheetsStore(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				if bl, err = sheetsStore.Blacklist(cmd.Context()); err != nil {
					return err
				}
			}

			if bl.Empty() {
				fmt.Println("blacklist is empty")
				return nil
			}
			printNames("excluded drives", bl.Drives)
			printNames("excluded projects", bl.Projects)
			return nil
		},
	}

	cmd.Flags().BoolVar(&useJSON, "json", false,
		"print the blacklist configured for the local JSON backend")
	return cmd
}

func printNames(title string, set map[string]bool) {
	if len(set) == 0 {
		return
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("%s:\n", title)
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
}
