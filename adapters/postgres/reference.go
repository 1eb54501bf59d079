// Package postgres loads the reference dataset from a Postgres table as an
// alternative to the file-backed source. The load is a single startup
// SELECT; requests never touch the database.
package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"cropadvisor/domain/refdata"
	"cropadvisor/internal/errors"
)

// ReferenceSource reads the full reference table into a frame.
type ReferenceSource struct {
	db    *sqlx.DB
	table string
}

// NewReferenceSource creates a Postgres-backed reference source.
func NewReferenceSource(db *sqlx.DB, table string) *ReferenceSource {
	return &ReferenceSource{db: db, table: table}
}

// Load selects every row of the table and materializes it as an immutable
// frame. Column values are stringified so the frame's parse-on-aggregate
// semantics match the file-backed source.
func (s *ReferenceSource) Load(ctx context.Context) (*refdata.Frame, error) {
	query := fmt.Sprintf("SELECT * FROM %s", pq.QuoteIdentifier(s.table))
	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, errors.DataLoadError("failed to query reference table", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.DataLoadError("failed to read reference table columns", err)
	}

	var data [][]string
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, errors.DataLoadError("failed to scan reference row", err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = stringify(v)
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.DataLoadError("failed iterating reference rows", err)
	}

	return refdata.NewFrame(columns, data), nil
}

func stringify(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(x)
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}
