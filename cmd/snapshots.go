package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ionut-t/tourbillon/internal/config"
	"github.com/ionut-t/tourbillon/store/snapshots"
	"github.com/ionut-t/tourbillon/ui/styles"
	"github.com/spf13/cobra"
)

func snapshotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "List saved snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listSnapshots(cmd.OutOrStdout(), snapshotStore())
		},
	}

	cmd.AddCommand(snapshotsRemoveCmd(), snapshotsRenameCmd())

	return cmd
}

func snapshotStore() snapshots.Store {
	return snapshots.New(config.New(nil).Storage())
}

func listSnapshots(w io.Writer, store snapshots.Store) error {
	records, err := store.Load()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(w, styles.Subtext0.Render("No snapshots in "+store.Dir()))
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Name,
			fmt.Sprintf("%.1f KB", float64(r.Size)/1024),
			r.UpdatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Overlay0).
		Headers("NAME", "SIZE", "SAVED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Inherit(styles.Primary).Bold(true)
			}
			return style.Inherit(styles.Text)
		})

	fmt.Fprintln(w, t)
	return nil
}

func findSnapshot(store snapshots.Store, name string) (snapshots.Record, error) {
	records, err := store.Load()
	if err != nil {
		return snapshots.Record{}, err
	}

	for _, r := range records {
		if r.Name == name || r.Name == name+snapshots.Extension {
			return r, nil
		}
	}

	return snapshots.Record{}, fmt.Errorf("snapshot %q not found", name)
}

func snapshotsRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"delete"},
		Short:   "Delete a snapshot",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := snapshotStore()

			record, err := findSnapshot(store, args[0])
			if err != nil {
				return err
			}

			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				confirmed := false
				confirm := huh.NewConfirm().
					Title(fmt.Sprintf("Delete %s?", record.Name)).
					Value(&confirmed)
				confirm.WithTheme(styles.FormTheme())

				if err := confirm.Run(); err != nil || !confirmed {
					return err
				}
			}

			if err := store.Delete(record); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render("Deleted "+record.Name))
			return nil
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")

	return cmd
}

func snapshotsRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <name> <new-name>",
		Short: "Rename a snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := snapshotStore()

			record, err := findSnapshot(store, args[0])
			if err != nil {
				return err
			}

			oldName := record.Name
			if err := store.Rename(&record, args[1]); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(fmt.Sprintf("Renamed %s to %s", oldName, record.Name)))
			return nil
		},
	}
}
