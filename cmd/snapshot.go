package cmd

import (
	"fmt"
	"time"

	"github.com/ionut-t/tourbillon/internal/config"
	"github.com/ionut-t/tourbillon/internal/logging"
	"github.com/ionut-t/tourbillon/pkg/movement"
	"github.com/ionut-t/tourbillon/pkg/render"
	"github.com/ionut-t/tourbillon/pkg/viewer"
	"github.com/ionut-t/tourbillon/store/snapshots"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// simulationStep is the frame length used when rendering without a terminal.
const simulationStep = time.Second / 60

type snapshotRequest struct {
	focus         movement.FocusTargetID
	hidden        []movement.LayerID
	speed         float64
	at            time.Duration
	selected      movement.PartID
	width, height int
	labels        bool
}

func snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the movement to a PNG without starting the viewer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New(nil)

			req, err := snapshotRequestFromFlags(cmd, cfg)
			if err != nil {
				return err
			}

			logger := zerolog.Nop()
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				logger = logging.New(cmd.ErrOrStderr(), "debug")
			}

			img, err := renderSnapshot(req, sessionOptions(cfg, logger))
			if err != nil {
				return err
			}

			output, _ := cmd.Flags().GetString("output")
			if output != "" {
				if err := img.SavePNG(output); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), output)
				return nil
			}

			record, err := snapshots.New(cfg.Storage()).Save(
				snapshots.DefaultName(req.focus.String(), time.Now()),
				img.EncodePNG,
			)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), record.Path)
			return nil
		},
	}

	cmd.Flags().StringP("focus", "f", movement.FocusOverview.String(), "Camera focus target")
	cmd.Flags().StringSlice("hide", nil, "Layers to hide (comma separated)")
	cmd.Flags().Float64("speed", 1, "Animation speed")
	cmd.Flags().Duration("at", 5*time.Second, "Simulated time before the frame is taken")
	cmd.Flags().String("select", "", "Part to highlight")
	cmd.Flags().StringP("output", "o", "", "Write the PNG here instead of the snapshots directory")
	cmd.Flags().Int("width", 0, "Image width in pixels (defaults to config)")
	cmd.Flags().Int("height", 0, "Image height in pixels (defaults to config)")
	cmd.Flags().Bool("labels", true, "Draw part labels")
	cmd.Flags().BoolP("verbose", "v", false, "Log the session to stderr")

	return cmd
}

func snapshotRequestFromFlags(cmd *cobra.Command, cfg config.Config) (snapshotRequest, error) {
	var req snapshotRequest
	var err error

	focus, _ := cmd.Flags().GetString("focus")
	if req.focus, err = movement.ParseFocusTarget(focus); err != nil {
		return req, err
	}

	hide, _ := cmd.Flags().GetStringSlice("hide")
	if req.hidden, err = parseLayers(hide); err != nil {
		return req, err
	}

	speed, _ := cmd.Flags().GetFloat64("speed")
	req.speed = config.ClampSpeed(speed, config.DefaultSpeed)

	req.at, _ = cmd.Flags().GetDuration("at")
	if req.at < 0 {
		return req, fmt.Errorf("--at cannot be negative")
	}

	if selected, _ := cmd.Flags().GetString("select"); selected != "" {
		if req.selected, err = movement.ParsePart(selected); err != nil {
			return req, err
		}
	}

	req.width, req.height = cfg.SnapshotSize()
	if w, _ := cmd.Flags().GetInt("width"); w > 0 {
		req.width = w
	}
	if h, _ := cmd.Flags().GetInt("height"); h > 0 {
		req.height = h
	}

	req.labels, _ = cmd.Flags().GetBool("labels")

	return req, nil
}

func parseLayers(names []string) ([]movement.LayerID, error) {
	layers := make([]movement.LayerID, 0, len(names))
	for _, name := range names {
		layer, err := movement.ParseLayer(name)
		if err != nil {
			return nil, err
		}
		layers = append(layers, layer)
	}
	return layers, nil
}

// renderSnapshot runs a private session for req.at of simulated time and
// draws the last frame.
func renderSnapshot(req snapshotRequest, opts viewer.Options) (*render.Image, error) {
	session := snapshotSession(req, opts)
	defer session.Close()

	return session.Snapshot(req.width, req.height, render.WithLabels(req.labels))
}

// snapshotSession starts a session with the camera already on req.focus and
// advances it to req.at.
func snapshotSession(req snapshotRequest, opts viewer.Options) *viewer.Session {
	opts.InitialFocus = req.focus
	session := viewer.New(opts)

	store := session.Store()
	store.SetAnimationSpeed(req.speed)
	for _, layer := range req.hidden {
		store.SetLayerVisibility(layer, false)
	}
	if req.selected != movement.PartNone {
		session.Router().Select(req.selected)
	}

	for remaining := req.at; remaining > 0; remaining -= simulationStep {
		session.Advance(min(simulationStep, remaining).Seconds())
	}

	return session
}
