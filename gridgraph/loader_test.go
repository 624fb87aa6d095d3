package gridgraph_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evacroute/gridgraph"
)

const floorCSV = `,0,1,2,3
0,0,0,1,3
1,0,,1,0
2,4,0,0,0
`

func TestLoadCSV_HeaderAndIndex(t *testing.T) {
	m, err := gridgraph.LoadCSV(strings.NewReader(floorCSV), gridgraph.DefaultCSVOptions())
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, 0, 1, 3},
		{0, 0, 1, 0},
		{4, 0, 0, 0},
	}, m)
}

func TestLoadCSV_Bare(t *testing.T) {
	m, err := gridgraph.LoadCSV(strings.NewReader("0,1\n1,0\n"), gridgraph.CSVOptions{})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {1, 0}}, m)

	_, err = gridgraph.LoadCSV(strings.NewReader(""), gridgraph.CSVOptions{})
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

func TestLoadCSV_NonNumeric(t *testing.T) {
	m, err := gridgraph.LoadCSV(strings.NewReader("0, ,1\n,0,0\n"), gridgraph.CSVOptions{})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0, 1}, {0, 0, 0}}, m, "blank fields are Free")

	for _, doc := range []string{"0,l,1\n", "0,1\nwall,0\n", "0,1\n0,NaN?\n", "0,NaN\n", "Inf,0\n"} {
		_, err = gridgraph.LoadCSV(strings.NewReader(doc), gridgraph.CSVOptions{})
		assert.ErrorIs(t, err, gridgraph.ErrMalformedLayout, "%q", doc)
	}

	_, err = gridgraph.LoadCSV(strings.NewReader(",0,1\nr0,0,x\n"), gridgraph.DefaultCSVOptions())
	assert.ErrorIs(t, err, gridgraph.ErrMalformedLayout, "labels are skipped, cells are not")
}

func TestLoadText(t *testing.T) {
	m, err := gridgraph.LoadText(strings.NewReader("0 0 1\n\n3 0 4\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0, 1}, {3, 0, 4}}, m)

	_, err = gridgraph.LoadText(strings.NewReader("0 x\n"))
	assert.ErrorIs(t, err, gridgraph.ErrMalformedLayout)
}

func TestLoadFloorFiles(t *testing.T) {
	dir := t.TempDir()
	f0 := filepath.Join(dir, "matrix.csv")
	f1 := filepath.Join(dir, "matrix1.txt")
	require.NoError(t, os.WriteFile(f0, []byte(floorCSV), 0o600))
	require.NoError(t, os.WriteFile(f1, []byte("0 0 0 0\n0 1 1 0\n0 0 0 3\n"), 0o600))

	b, err := gridgraph.LoadFloorFiles(f0, f1)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Floors())
	assert.Equal(t, 3, b.Rows())
	assert.Equal(t, 4, b.Cols())

	code, err := b.Code(gridgraph.Cell{Floor: 1, Row: 2, Col: 3})
	require.NoError(t, err)
	assert.Equal(t, gridgraph.ExitMarker, code)

	_, err = gridgraph.LoadFloorFiles(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
	_, err = gridgraph.LoadFloorFiles()
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}
