package tabular

import (
	"context"

	"cropadvisor/domain/refdata"
	"cropadvisor/internal/errors"
)

// ReferenceSource loads the historical reference dataset from a CSV or
// Excel file.
type ReferenceSource struct {
	path string
}

// NewReferenceSource creates a file-backed reference source.
func NewReferenceSource(path string) *ReferenceSource {
	return &ReferenceSource{path: path}
}

// Load reads the file into an immutable frame. Failure is fatal to startup.
func (s *ReferenceSource) Load(ctx context.Context) (*refdata.Frame, error) {
	_ = ctx
	table, err := NewReader(s.path).Read()
	if err != nil {
		return nil, errors.DataLoadError("failed to load reference dataset", err)
	}
	return refdata.NewFrame(table.Headers, table.Rows), nil
}
