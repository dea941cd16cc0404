package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hverr/drivedocs/pkg/model"
	"github.com/hverr/drivedocs/pkg/scan"
)

var (
	driveStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
	dateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

func newScanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Scan attached external drives and print the result",
		Long: "Scan the attached external drives and their project directories " +
			"and print what a sync would report, without touching any documentation store.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			drives, err := scan.Scan(cmd.Context())
			if err != nil {
				return err
			}
			if len(drives) == 0 {
				fmt.Println("no external drives found")
				return nil
			}

			for _, drive := range drives {
				printDrive(drive)
			}
			return nil
		},
	}
}

func printDrive(drive model.Drive) {
	fmt.Printf("%s  %s\n",
		driveStyle.Render(drive.Name),
		dimStyle.Render(fmt.Sprintf("%s free of %s",
			humanizeGB(drive.FreeStorage), humanizeGB(drive.TotalStorage))))

	for i, project := range drive.Projects {
		branch := "├──"
		if i == len(drive.Projects)-1 {
			branch = "└──"
		}
		line := fmt.Sprintf("%s %s  %s", branch, project.Name,
			dimStyle.Render(humanizeGB(project.Size)))
		if project.Date != "" {
			line += "  " + dateStyle.Render(project.Date)
		}
		fmt.Println(line)
	}
}

// humanizeGB renders a decimal-gigabyte measurement in human units.
func humanizeGB(gb float64) string {
	return humanize.Bytes(uint64(gb * 1e9))
}
