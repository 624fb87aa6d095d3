package main

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evacroute/gridgraph"
	"github.com/katalvlaran/evacroute/planner"
)

// writeFloor writes an n×n text layout, optionally with markers.
func writeFloor(t *testing.T, dir, name string, n int, mark map[[2]int]int) string {
	t.Helper()
	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			v := mark[[2]int{r, c}]
			sb.WriteByte(byte('0' + v))
		}
		sb.WriteByte('\n')
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"-q"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPlanCmd(t *testing.T) {
	floor := writeFloor(t, t.TempDir(), "ground.txt", 11, nil)
	out, err := run(t, "plan", "-f", floor, "--start", "0,0,0", "--exit", "0,10,10", "--verify")
	require.NoError(t, err)

	var resp planner.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.InDelta(t, 10*math.Sqrt2, resp.Length, 1e-9)
	assert.Equal(t, [2]int{10, 10}, resp.Path[len(resp.Path)-1])
	assert.True(t, resp.FireConsidered)
	assert.Contains(t, out, `"turning_points_count": 0`)
}

func TestPlanCmd_FireAndConfig(t *testing.T) {
	dir := t.TempDir()
	writeFloor(t, dir, "ground.txt", 11, nil)
	cfg := filepath.Join(dir, "evacroute.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("floors: [ground.txt]\naco:\n  max_iter: 10\n"), 0o600))

	out, err := run(t, "plan", "-c", cfg, "--start", "0,0,0", "--exit", "0,10,10",
		"--fire", "0,5,5", "--stage", "spread", "--seed", "3")
	require.NoError(t, err)
	var resp planner.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Greater(t, resp.Length, 10*math.Sqrt2)
	assert.NotContains(t, resp.Path, [2]int{5, 5})
}

func TestPlanCmd_Markers(t *testing.T) {
	floor := writeFloor(t, t.TempDir(), "ground.txt", 6, map[[2]int]int{
		{1, 1}: int(gridgraph.StartMarker),
		{4, 5}: int(gridgraph.ExitMarker),
		{0, 5}: int(gridgraph.ExitMarker),
	})
	out, err := run(t, "plan", "-f", floor, "--markers", "--verify")
	require.NoError(t, err)
	var resp planner.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, [2]int{1, 1}, resp.Path[0])
	assert.Equal(t, [2]int{0, 5}, resp.Path[len(resp.Path)-1], "nearest marker wins")
}

func TestPlanCmd_Errors(t *testing.T) {
	floor := writeFloor(t, t.TempDir(), "ground.txt", 5, nil)

	_, err := run(t, "plan", "-f", floor, "--exit", "0,4,4")
	assert.ErrorContains(t, err, "--start")

	_, err = run(t, "plan", "-f", floor, "--start", "0,0", "--exit", "0,4,4")
	assert.ErrorContains(t, err, "floor,row,col")

	_, err = run(t, "plan", "-f", floor, "--start", "0,0,0")
	assert.ErrorIs(t, err, planner.ErrNoExits)

	_, err = run(t, "plan", "-f", floor, "--start", "0,0,0", "--exit", "0,4,4", "--fire", "0,0,0", "--stage", "spread")
	assert.True(t, planner.IsUnsafe(err), "%v", err)

	_, err = run(t, "plan", "--start", "0,0,0", "--exit", "0,4,4")
	assert.ErrorContains(t, err, "no floors")
}

func TestFireCmd(t *testing.T) {
	floor := writeFloor(t, t.TempDir(), "ground.txt", 3, nil)
	out, err := run(t, "fire", "-f", floor, "--fire", "0,1,1", "--stage", "spread")
	require.NoError(t, err)
	assert.Contains(t, out, "floor 0, stage spread, threshold 0.20")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 4, "header plus one line per row")

	_, err = run(t, "fire", "-f", floor, "--stage", "blaze")
	assert.Error(t, err)
}

func TestParseCell(t *testing.T) {
	c, err := parseCell(" 1, 2 ,3")
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Cell{Floor: 1, Row: 2, Col: 3}, c)

	_, err = parseCell("1,x,3")
	assert.Error(t, err)
}
