package ports

import (
	"context"

	"cropadvisor/domain/refdata"
)

// ReferenceSource loads the historical district-by-season dataset into an
// immutable frame. Loading happens once at startup; a load failure is fatal
// because the engine cannot aggregate features without reference data.
type ReferenceSource interface {
	Load(ctx context.Context) (*refdata.Frame, error)
}
