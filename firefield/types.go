// SPDX-License-Identifier: MIT

package firefield

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for fire field construction.
var (
	// ErrUnknownStage indicates a stage name outside initial/growth/spread.
	ErrUnknownStage = errors.New("firefield: unknown stage")
	// ErrBadProfile indicates a stage profile with out-of-range parameters.
	ErrBadProfile = errors.New("firefield: invalid stage profile")
)

// Stage is a fire-severity profile name.
type Stage string

const (
	StageInitial Stage = "initial"
	StageGrowth  Stage = "growth"
	StageSpread  Stage = "spread"
)

// Stages lists the known stages from least to most severe.
func Stages() []Stage {
	return []Stage{StageInitial, StageGrowth, StageSpread}
}

// ParseStage maps a stage name (case-insensitive, surrounding space ignored)
// to a Stage.
func ParseStage(s string) (Stage, error) {
	st := Stage(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StageInitial, StageGrowth, StageSpread:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStage, s)
}

// Profile holds the tuning of one stage.
type Profile struct {
	// DiffusionRate is the blend weight of the neighbour mean, in [0,1].
	DiffusionRate float64
	// Amplification scales the diffused field; must be > 0.
	Amplification float64
	// Passes is the number of diffusion rounds; must be >= 0.
	Passes int
	// SafetyThreshold is the highest tolerable intensity, in [0,1].
	SafetyThreshold float64
}

// Validate reports ErrBadProfile for out-of-range parameters.
func (p Profile) Validate() error {
	switch {
	case p.DiffusionRate < 0 || p.DiffusionRate > 1:
		return fmt.Errorf("%w: diffusion rate %v not in [0,1]", ErrBadProfile, p.DiffusionRate)
	case p.Amplification <= 0:
		return fmt.Errorf("%w: amplification %v must be positive", ErrBadProfile, p.Amplification)
	case p.Passes < 0:
		return fmt.Errorf("%w: passes %d must be non-negative", ErrBadProfile, p.Passes)
	case p.SafetyThreshold < 0 || p.SafetyThreshold > 1:
		return fmt.Errorf("%w: safety threshold %v not in [0,1]", ErrBadProfile, p.SafetyThreshold)
	}
	return nil
}

// Options configures the stage profiles.
type Options struct {
	Profiles map[Stage]Profile
}

// DefaultOptions returns the tuned profiles for all three stages.
func DefaultOptions() Options {
	return Options{
		Profiles: map[Stage]Profile{
			StageInitial: {DiffusionRate: 0.05, Amplification: 1.0, Passes: 2, SafetyThreshold: 0.35},
			StageGrowth:  {DiffusionRate: 0.12, Amplification: 1.3, Passes: 3, SafetyThreshold: 0.25},
			StageSpread:  {DiffusionRate: 0.20, Amplification: 1.6, Passes: 4, SafetyThreshold: 0.20},
		},
	}
}

// Profile returns the profile for s.
func (o Options) Profile(s Stage) (Profile, error) {
	p, ok := o.Profiles[s]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q has no profile", ErrUnknownStage, s)
	}
	return p, nil
}

// Validate checks that every known stage has a valid profile.
func (o Options) Validate() error {
	for _, s := range Stages() {
		p, err := o.Profile(s)
		if err != nil {
			return err
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("stage %s: %w", s, err)
		}
	}
	return nil
}
