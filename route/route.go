// SPDX-License-Identifier: MIT

package route

import (
	"fmt"
	"math"

	"github.com/katalvlaran/evacroute/gridgraph"
)

var headings = [8]string{"north", "north-east", "east", "south-east", "south", "south-west", "west", "north-west"}

// step is a displacement between consecutive path cells.
type step struct{ dr, dc float64 }

func between(a, b gridgraph.Cell) step {
	return step{dr: float64(b.Row - a.Row), dc: float64(b.Col - a.Col)}
}

func (s step) zero() bool      { return s.dr == 0 && s.dc == 0 }
func (s step) length() float64 { return math.Hypot(s.dr, s.dc) }

// heading snaps s to the nearest of eight compass points.
func (s step) heading() string {
	a := math.Atan2(s.dc, -s.dr) // clockwise from north
	i := int(math.Round(a/(math.Pi/4))) % 8
	if i < 0 {
		i += 8
	}
	return headings[i]
}

// turn returns the angle between in and out in radians and its label.
// With rows growing south, a positive cross product is a clockwise, i.e.
// right, turn.
func turn(in, out step) (float64, Turn) {
	cross := in.dc*out.dr - in.dr*out.dc
	dot := in.dc*out.dc + in.dr*out.dr
	angle := math.Atan2(math.Abs(cross), dot)
	right := cross > 0
	switch {
	case angle <= math.Pi/4+1e-9:
		if right {
			return angle, BearRight
		}
		return angle, BearLeft
	case angle <= 3*math.Pi/4+1e-9:
		if right {
			return angle, Right
		}
		return angle, Left
	}
	return angle, UTurn
}

// Length returns the Euclidean length of path in cells.
func Length(path []gridgraph.Cell) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += between(path[i-1], path[i]).length()
	}
	return total
}

// Summarize computes the length, turning points and instructions of path.
// Repeated consecutive cells contribute nothing and never form a turn.
// Complexity: O(len(path)).
func Summarize(path []gridgraph.Cell, opts Options) (Summary, error) {
	if err := opts.Validate(); err != nil {
		return Summary{}, err
	}
	if len(path) == 0 {
		return Summary{}, ErrEmptyPath
	}

	// 1) Cumulative distance from the start, per cell.
	dist := make([]float64, len(path))
	for i := 1; i < len(path); i++ {
		dist[i] = dist[i-1] + between(path[i-1], path[i]).length()*opts.CellSize
	}
	s := Summary{
		Length:        dist[len(dist)-1],
		TurningPoints: []TurningPoint{},
	}

	// 2) Turning points: compare the last non-zero step with the next one.
	var in step
	first := -1
	for i := 1; i < len(path); i++ {
		out := between(path[i-1], path[i])
		if out.zero() {
			continue
		}
		if first < 0 {
			first = i
		} else if angle, label := turn(in, out); angle > opts.AngleTolerance {
			s.TurningPoints = append(s.TurningPoints, TurningPoint{
				Cell:     path[i-1],
				Step:     i - 1,
				Turn:     label,
				Angle:    angle * 180 / math.Pi,
				Distance: dist[i-1],
			})
		}
		in = out
	}

	// 3) Instructions between consecutive turning points.
	if first > 0 {
		end := len(path) - 1
		if len(s.TurningPoints) > 0 {
			end = s.TurningPoints[0].Step
		}
		h := between(path[first-1], path[first]).heading()
		s.Instructions = append(s.Instructions, Instruction{
			Action:   Head,
			Heading:  h,
			Distance: dist[end],
			Text:     fmt.Sprintf("Head %s for %.1f m", h, dist[end]),
		})
	}
	for k, tp := range s.TurningPoints {
		end := len(path) - 1
		if k+1 < len(s.TurningPoints) {
			end = s.TurningPoints[k+1].Step
		}
		h := outgoing(path, tp.Step).heading()
		d := dist[end] - tp.Distance
		s.Instructions = append(s.Instructions, Instruction{
			Action:   Continue,
			Turn:     tp.Turn,
			Heading:  h,
			Distance: d,
			Text:     fmt.Sprintf("%s and continue %s for %.1f m", manoeuvre(tp.Turn), h, d),
		})
	}
	s.Instructions = append(s.Instructions, Instruction{Action: Arrive, Text: "Arrive at the exit"})

	return s, nil
}

// outgoing is the first non-zero step leaving path[i].
func outgoing(path []gridgraph.Cell, i int) step {
	for j := i + 1; j < len(path); j++ {
		if s := between(path[i], path[j]); !s.zero() {
			return s
		}
	}
	return step{}
}

func manoeuvre(t Turn) string {
	switch t {
	case BearLeft:
		return "Bear left"
	case BearRight:
		return "Bear right"
	case Left:
		return "Turn left"
	case Right:
		return "Turn right"
	}
	return "Make a u-turn"
}
