package refdata

import (
	"sort"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
)

// Column names shared by every reference data source. The training pipeline
// that produces the dataset owns the naming; the engine only reads them.
const (
	ColDistrict   = "District"
	ColState      = "State_clean"
	ColSeason     = "Season"
	ColCrop       = "Crop"
	ColNitrogen   = "Nitrogen"
	ColPhosphorus = "Phosphorus"
	ColPotassium  = "Potassium"
	ColNDVIMean   = "ndvi_mean"
	ColNDVIKharif = "ndvi_kharif_mean"
	ColNDVIRabi   = "ndvi_rabi_mean"
)

// Normalize canonicalizes free-text keys (district names, state names) the
// same way for storage and lookup.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Frame is an immutable in-memory columnar view of the historical reference
// dataset. It is loaded once at startup and shared read-only across requests.
type Frame struct {
	columns      []string
	index        map[string]int
	rows         [][]string
	districtNorm []string
	stateNorm    []string
}

// NewFrame builds a frame from a header row and data rows. Short rows are
// padded so every row spans all columns.
func NewFrame(columns []string, rows [][]string) *Frame {
	f := &Frame{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		if _, exists := f.index[c]; !exists {
			f.index[c] = i
		}
	}
	f.rows = make([][]string, 0, len(rows))
	for _, r := range rows {
		row := make([]string, len(columns))
		copy(row, r)
		f.rows = append(f.rows, row)
	}

	f.districtNorm = f.normalizedColumn(ColDistrict)
	f.stateNorm = f.normalizedColumn(ColState)
	return f
}

func (f *Frame) normalizedColumn(col string) []string {
	idx, ok := f.index[col]
	if !ok {
		return nil
	}
	out := make([]string, len(f.rows))
	for i, row := range f.rows {
		out[i] = Normalize(row[idx])
	}
	return out
}

// HasColumn reports whether the dataset carries the named column.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Columns returns the column names in dataset order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.columns...)
}

// Len returns the number of data rows.
func (f *Frame) Len() int {
	return len(f.rows)
}

// ByDistrict returns the view of rows whose normalized district equals key.
func (f *Frame) ByDistrict(key string) *View {
	return f.matchView(f.districtNorm, Normalize(key))
}

// ByState returns the view of rows whose normalized state equals key. The
// view is empty when the dataset has no state column.
func (f *Frame) ByState(key string) *View {
	return f.matchView(f.stateNorm, Normalize(key))
}

func (f *Frame) matchView(norm []string, key string) *View {
	v := &View{frame: f}
	if norm == nil || key == "" {
		return v
	}
	for i, n := range norm {
		if n == key {
			v.idx = append(v.idx, i)
		}
	}
	return v
}

// All returns the view spanning the entire dataset.
func (f *Frame) All() *View {
	v := &View{frame: f, idx: make([]int, len(f.rows))}
	for i := range f.rows {
		v.idx[i] = i
	}
	return v
}

// View is a request-scoped subset of frame rows. Aggregations skip missing
// and unparseable cells so sparse columns degrade instead of failing.
type View struct {
	frame *Frame
	idx   []int
}

// Empty reports whether the view matched no rows.
func (v *View) Empty() bool {
	return len(v.idx) == 0
}

// Len returns the number of rows in the view.
func (v *View) Len() int {
	return len(v.idx)
}

// Mean averages the numeric values of a column over the view. The second
// return is false when the column is absent or holds no parseable values.
func (v *View) Mean(col string) (float64, bool) {
	ci, ok := v.frame.index[col]
	if !ok {
		return 0, false
	}
	values := make([]float64, 0, len(v.idx))
	for _, ri := range v.idx {
		cell := strings.TrimSpace(v.frame.rows[ri][ci])
		if cell == "" {
			continue
		}
		x, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			continue
		}
		values = append(values, x)
	}
	if len(values) == 0 {
		return 0, false
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return 0, false
	}
	return mean, true
}

// Mode returns the most frequent non-empty value of a column over the view.
// Frequency ties break lexicographically so the result is deterministic.
func (v *View) Mode(col string) (string, bool) {
	ci, ok := v.frame.index[col]
	if !ok {
		return "", false
	}
	counts := make(map[string]int)
	for _, ri := range v.idx {
		cell := strings.TrimSpace(v.frame.rows[ri][ci])
		if cell == "" {
			continue
		}
		counts[cell]++
	}
	if len(counts) == 0 {
		return "", false
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	best := keys[0]
	for _, k := range keys[1:] {
		if counts[k] > counts[best] {
			best = k
		}
	}
	return best, true
}
