package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/oliverbestmann/house-roads/houses"
	"github.com/oliverbestmann/house-roads/mst"
	"github.com/oliverbestmann/house-roads/sequencer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) newSolveCmd() *cobra.Command {
	var root int

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Replay the spanning tree from a house on the terminal",
		Long: `Computes the minimum spanning tree rooted at the given house and prints one
road per animation interval, followed by the total travel time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, root)
		},
	}

	cmd.Flags().IntVar(&root, "root", 0, "index of the house to start from")
	cmd.Flags().Duration("interval", 0, "pause between two roads (default from config)")
	_ = a.v.BindPFlag("animation.interval", cmd.Flags().Lookup("interval"))

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, root int) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	m, err := houses.LoadOrSample(ctx, a.cfg.Map.Source)
	if err != nil {
		return fmt.Errorf("load map: %w", err)
	}

	steps, err := m.Solve(root)
	if err != nil {
		return fmt.Errorf("solve from house %d: %w", root, err)
	}

	a.logger.Info("house selected",
		zap.Int("house", root),
		zap.Int("houses", len(m.Houses)),
		zap.Int("steps", len(steps)))

	out := cmd.OutOrStdout()

	onEdge := func(index int, step mst.Step, total float64) {
		_, _ = fmt.Fprintf(out, "%3d. %s  (total %s)\n", index+1, step, houses.FormatTime(total))
	}

	playback := sequencer.Play(steps, onEdge,
		sequencer.WithInterval(a.cfg.Animation.Interval),
		sequencer.WithLogger(a.logger))

	total, err := playback.Wait(ctx)
	if err != nil {
		playback.Cancel()
		return fmt.Errorf("playback: %w", err)
	}

	_, _ = fmt.Fprintf(out, "Total time: %s\n", houses.FormatTime(total))
	return nil
}
