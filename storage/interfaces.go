package storage

import (
	"context"

	"github.com/poiesic/talentscout/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// FindNearest finds candidate records nearest to the given query vector.
	// Distance is 1 - cosine similarity, so smaller means closer.
	// Returns up to limit hits ordered by distance ascending.
	// Records without a stored full-text embedding are skipped.
	FindNearest(ctx context.Context, vector []float32, limit int) ([]*core.RetrievalHit, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// CandidateRepository provides operations for managing candidate records.
type CandidateRepository interface {
	Repository
	// UpsertCandidates inserts or replaces candidate records keyed by ID.
	// A record with an ID that already exists fully replaces the stored
	// record (last write wins). Sets InsertedAt on first insert and
	// refreshes UpdatedAt on every write.
	// Returns the records with timestamps populated.
	UpsertCandidates(ctx context.Context, records ...*core.CandidateRecord) ([]*core.CandidateRecord, error)

	// DeleteCandidates removes candidate records by their IDs.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteCandidates(ctx context.Context, ids ...string) error

	// GetCandidate retrieves a single candidate record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetCandidate(ctx context.Context, id string) (*core.CandidateRecord, error)

	// GetCandidates retrieves multiple candidate records by their IDs.
	// Returns only the records that exist (no error for missing records).
	GetCandidates(ctx context.Context, ids ...string) ([]*core.CandidateRecord, error)

	// GetAllCandidates retrieves every stored candidate record.
	// Order is unspecified. Intended for reindexing and diagnostics,
	// not for serving queries.
	GetAllCandidates(ctx context.Context) ([]*core.CandidateRecord, error)

	// CountCandidates returns the number of stored candidate records.
	CountCandidates(ctx context.Context) (int, error)
}
