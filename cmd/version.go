package cmd

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/ionut-t/tino/internal/version"
	"github.com/ionut-t/tino/ui/styles"
	"github.com/spf13/cobra"
)

const logo = `
 _   _
| |_(_)_ __   ___
| __| | '_ \ / _ \
| |_| | | | | (_) |
 \__|_|_| |_|\___/
`

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of tino",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionText(version.Get()))
		},
	}
}

func versionText(info version.Info) string {
	table := uitable.New()
	table.Separator = "   "
	table.AddRow("  Version", info.Version)
	table.AddRow("  Commit", info.Commit)
	table.AddRow("  Release date", info.Date)

	return styles.Primary.Margin(0, 2).Render(logo) + "\n" + table.String()
}
