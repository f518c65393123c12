package cmd

import (
	"fmt"

	"github.com/ionut-t/tourbillon/internal/config"
	"github.com/ionut-t/tourbillon/internal/version"
	"github.com/ionut-t/tourbillon/pkg/update"
	"github.com/ionut-t/tourbillon/ui/styles"
	"github.com/spf13/cobra"
)

const logo = `
 _                 _     _ _ _             
| |_ ___  _  _ _ _| |__ (_) | |___  _ _    
|  _/ _ \| || | '_| '_ \| | | / _ \| ' \   
 \__\___/ \_,_|_| |_.__/|_|_|_\___/|_||_|  
`

func versionTemplate() string {
	versionTpl := styles.Primary.Margin(0, 2).Render(logo) + `
  Version        %s
  Commit         %s
  Release date   %s
`
	return fmt.Sprintf(versionTpl, version.Version(), version.Commit(), version.Date())
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), versionTemplate())

			if check, _ := cmd.Flags().GetBool("check"); !check {
				return nil
			}

			checker := update.New(version.Version(), config.New(nil).Storage())

			release, err := checker.Check(cmd.Context())
			if err != nil {
				return err
			}

			if release.HasUpdate {
				fmt.Fprintln(cmd.OutOrStdout(), styles.Warning.Margin(1, 2).Render(
					fmt.Sprintf("%s is available: %s", release.Tag, release.URL),
				))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Margin(1, 2).Render("You are on the latest version."))
			return nil
		},
	}

	cmd.Flags().Bool("check", false, "Check for a newer release")

	return cmd
}
