package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/evacroute/firefield"
)

func newFireCmd(a *app) *cobra.Command {
	var (
		fire  []string
		floor int
		stage string
	)
	cmd := &cobra.Command{
		Use:     "fire",
		Short:   "Print the fire-intensity snapshot of one floor",
		Example: `  evacroute fire -f ground.csv --fire 0,5,5 --stage spread`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, b, err := a.load()
			if err != nil {
				return err
			}
			st, err := firefield.ParseStage(stage)
			if err != nil {
				return err
			}
			seeds, err := parseCells(fire)
			if err != nil {
				return err
			}
			field, err := firefield.Build(b, seeds, floor, st, cfg.PlannerOptions().Fire)
			if err != nil {
				return err
			}
			a.logger.Debug("fire snapshot built", zap.Int("floor", floor), zap.String("stage", string(st)))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "floor %d, stage %s, threshold %.2f, max %.2f\n", floor, st, field.Threshold(), field.Max())
			fmt.Fprintf(out, "%.2f\n", mat.Formatted(field.Matrix(), mat.Squeeze()))
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringArrayVar(&fire, "fire", nil, "fire seed cell as floor,row,col (repeatable)")
	fl.IntVar(&floor, "floor", 0, "floor to evaluate")
	fl.StringVar(&stage, "stage", "initial", "fire stage: initial, growth or spread")
	return cmd
}
