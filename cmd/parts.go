package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ionut-t/tourbillon/pkg/animation"
	"github.com/ionut-t/tourbillon/pkg/movement"
	"github.com/ionut-t/tourbillon/ui/styles"
	"github.com/spf13/cobra"
)

func partsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parts",
		Short: "List the parts of the movement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			layerFlag, _ := cmd.Flags().GetString("layer")

			parts := movement.Parts()

			if layerFlag != "" {
				layer, err := movement.ParseLayer(layerFlag)
				if err != nil {
					return err
				}
				parts = movement.PartsInLayer(layer)
			}

			fmt.Fprintln(cmd.OutOrStdout(), partsTable(parts))
			return nil
		},
	}

	cmd.Flags().StringP("layer", "l", "", "Only list parts of this layer")

	return cmd
}

func partsTable(parts []movement.PartID) string {
	rows := make([][]string, 0, len(parts))
	layers := make([]movement.LayerID, 0, len(parts))

	for _, p := range parts {
		info, _ := movement.Lookup(p)
		rows = append(rows, []string{p.String(), info.Label, info.Layer.String(), motion(p)})
		layers = append(layers, info.Layer)
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Overlay0).
		Headers("ID", "PART", "LAYER", "MOTION").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)

			switch {
			case row == table.HeaderRow:
				return style.Inherit(styles.Primary).Bold(true)
			case col == 2:
				return style.Inherit(styles.Layer(layers[row]))
			default:
				return style.Inherit(styles.Text)
			}
		}).
		String()
}

func motion(p movement.PartID) string {
	rate, ok := animation.Rates[p]
	if !ok {
		return "static"
	}

	switch rate.Motion {
	case animation.Rotation:
		return fmt.Sprintf("%+g rpm", float64(rate.Sign)*rate.RPM)
	default:
		return fmt.Sprintf("%g Hz ±%g rad", rate.FrequencyHz, rate.Amplitude)
	}
}
