// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/healthdash/schema"
)

// TableLoader reads a wide dataset from a path.
// This allows the orchestration logic to be tested without files on disk.
type TableLoader interface {
	// Load returns the raw wide table stored at path.
	Load(ctx context.Context, path string) (*schema.WideTable, error)
}
