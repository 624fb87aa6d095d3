package gridgraph

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// CSVOptions describes the framing of an exported floor matrix.
type CSVOptions struct {
	// HeaderRow skips the first record (column labels).
	HeaderRow bool
	// IndexColumn skips the first field of every record (row labels).
	IndexColumn bool
}

// DefaultCSVOptions matches the floor exports: a header row and an index column.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{HeaderRow: true, IndexColumn: true}
}

// LoadCSV reads one floor matrix from r. Empty fields are read as Free,
// matching how the exports pad unlabeled cells; any other non-numeric field
// is ErrMalformedLayout.
func LoadCSV(r io.Reader, opts CSVOptions) ([][]int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLayout, err)
	}
	first := 1 // record number of records[0]
	if opts.HeaderRow && len(records) > 0 {
		records = records[1:]
		first = 2
	}
	out := make([][]int, 0, len(records))
	for n, rec := range records {
		if opts.IndexColumn && len(rec) > 0 {
			rec = rec[1:]
		}
		if len(rec) == 0 {
			continue
		}
		row := make([]int, len(rec))
		for i, field := range rec {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: record %d field %d: %q is not a number", ErrMalformedLayout, n+first, i+1, field)
			}
			row[i] = int(v)
		}
		out = append(out, row)
	}
	if len(out) == 0 {
		return nil, ErrEmptyGrid
	}
	return out, nil
}

// LoadText reads one floor matrix of whitespace separated integers,
// one row per non-blank line.
func LoadText(r io.Reader) ([][]int, error) {
	var out [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not an integer", ErrMalformedLayout, line, f)
			}
			row[i] = v
		}
		out = append(out, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLayout, err)
	}
	if len(out) == 0 {
		return nil, ErrEmptyGrid
	}
	return out, nil
}

// LoadFloorFiles builds a Building from one file per floor, floor 0 first.
// Files ending in .csv are read with DefaultCSVOptions, anything else with
// LoadText.
func LoadFloorFiles(paths ...string) (*Building, error) {
	if len(paths) == 0 {
		return nil, ErrEmptyGrid
	}
	floors := make([][][]int, 0, len(paths))
	for i, p := range paths {
		m, err := loadFloorFile(p)
		if err != nil {
			return nil, fmt.Errorf("floor %d (%s): %w", i, p, err)
		}
		floors = append(floors, m)
	}
	return NewBuilding(floors...)
}

func loadFloorFile(path string) (m [][]int, err error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return LoadCSV(f, DefaultCSVOptions())
	}
	return LoadText(f)
}
