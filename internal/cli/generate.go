package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/oliverbestmann/house-roads/houses"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) newGenerateCmd() *cobra.Command {
	var format string
	var out string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random map of houses and roads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, format, out)
		},
	}

	flags := cmd.Flags()
	flags.Uint64("seed", 0, "random seed (default from config)")
	flags.Int("count", 0, "number of houses (default from config)")
	flags.StringVar(&format, "format", "json", "output format, json or yaml")
	flags.StringVarP(&out, "out", "o", "", "output file, stdout if empty")

	_ = a.v.BindPFlag("generate.seed", flags.Lookup("seed"))
	_ = a.v.BindPFlag("generate.count", flags.Lookup("count"))

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, formatName, out string) error {
	format, err := houses.ParseFormat(formatName)
	if err != nil {
		return err
	}

	gen := a.cfg.Generate
	if gen.Count <= 0 {
		return fmt.Errorf("house count must be positive, got %d", gen.Count)
	}

	m := houses.Generate(gen.Seed, houses.GenerateOptions{
		Count:      gen.Count,
		Width:      gen.Width,
		Height:     gen.Height,
		Neighbours: gen.Neighbours,
		Speed:      gen.Speed,
	})

	a.logger.Info("map generated",
		zap.Uint64("seed", gen.Seed),
		zap.Int("houses", len(m.Houses)),
		zap.Int("roads", len(m.Roads)))

	var w io.Writer = cmd.OutOrStdout()

	if out != "" {
		fp, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}

		defer func() { _ = fp.Close() }()

		w = fp
	}

	if err := m.Encode(w, format); err != nil {
		return fmt.Errorf("encode map: %w", err)
	}

	return nil
}
