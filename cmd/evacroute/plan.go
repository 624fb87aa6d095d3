package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/evacroute/planner"
)

type planFlags struct {
	start     string
	exits     []string
	fire      []string
	fireFloor int
	stage     string
	seed      int64
	verify    bool
	markers   bool
}

func newPlanCmd(a *app) *cobra.Command {
	var f planFlags
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan one evacuation route and print it as JSON",
		Example: `  evacroute plan -f ground.csv --start 0,0,0 --exit 0,10,10 --fire 0,5,5 --stage spread
  evacroute plan -c evacroute.yaml --markers --stage growth --fire 0,4,6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlan(cmd, &f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.start, "start", "", "start cell as floor,row,col")
	fl.StringArrayVar(&f.exits, "exit", nil, "exit cell as floor,row,col (repeatable)")
	fl.StringArrayVar(&f.fire, "fire", nil, "fire seed cell as floor,row,col (repeatable)")
	fl.IntVar(&f.fireFloor, "fire-floor", 0, "floor the fire seeds burn on")
	fl.StringVar(&f.stage, "stage", "initial", "fire stage: initial, growth or spread")
	fl.Int64Var(&f.seed, "seed", 0, "ant colony seed (0 keeps the configured seed)")
	fl.BoolVar(&f.verify, "verify", false, "also run A* and keep the cheaper route")
	fl.BoolVar(&f.markers, "markers", false, "take start and exits from the layout's start/exit markers")
	return cmd
}

func (a *app) runPlan(cmd *cobra.Command, f *planFlags) error {
	cfg, b, err := a.load()
	if err != nil {
		return err
	}
	req := planner.Request{FireFloor: f.fireFloor, Stage: f.stage, Seed: f.seed}
	if req.FireSeeds, err = parseCells(f.fire); err != nil {
		return err
	}
	if req.Exits, err = parseCells(f.exits); err != nil {
		return err
	}
	if f.start != "" {
		if req.Start, err = parseCell(f.start); err != nil {
			return err
		}
	}
	if f.markers {
		if err = markerRequest(b, &req, f.start != ""); err != nil {
			return err
		}
	} else if f.start == "" {
		return fmt.Errorf("--start is required without --markers")
	}

	opts := cfg.PlannerOptions()
	opts.VerifyWithAStar = opts.VerifyWithAStar || f.verify
	p, err := planner.New(b, opts, a.logger)
	if err != nil {
		return err
	}
	resp, err := p.Plan(cmd.Context(), req)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
