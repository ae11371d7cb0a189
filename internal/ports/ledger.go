package ports

import (
	"context"

	"github.com/renato0307/hotline/internal/domain"
)

// LogWriter appends hook triggers to the ledger
type LogWriter interface {
	// Insert stores a new entry and returns it with its assigned id and timestamp
	Insert(ctx context.Context, input domain.LogInput) (domain.LogEntry, error)
}

// LogReader retrieves ledger entries
type LogReader interface {
	// Get returns one entry, domain.ErrNotFound when the id is unknown
	Get(ctx context.Context, id int64) (domain.LogEntry, error)

	// Query returns entries matching filter, newest first
	Query(ctx context.Context, filter domain.LogFilter) ([]domain.LogEntry, error)

	// Count returns how many entries match filter, ignoring limit and offset
	Count(ctx context.Context, filter domain.LogFilter) (int64, error)
}

// LogClearer removes every ledger entry
type LogClearer interface {
	// ClearAll deletes all entries and returns how many were removed
	ClearAll(ctx context.Context) (int64, error)
}

// Ledger is the append-only event store
type Ledger interface {
	LogClearer
	LogReader
	LogWriter
	Close() error
}
