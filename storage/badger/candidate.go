package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/talentscout/core"
	"github.com/poiesic/talentscout/storage"
)

// CandidateRepository implements storage.CandidateRepository for BadgerDB.
type CandidateRepository struct {
	backend *Backend
}

var _ storage.CandidateRepository = (*CandidateRepository)(nil)

// NewCandidateRepository creates a new CandidateRepository.
func NewCandidateRepository(backend *Backend) (*CandidateRepository, error) {
	return &CandidateRepository{
		backend: backend,
	}, nil
}

// Close is a no-op; the backend owns the database handle.
func (r *CandidateRepository) Close() error {
	return nil
}

// FindNearest delegates to the backend.
func (r *CandidateRepository) FindNearest(ctx context.Context, vector []float32, limit int) ([]*core.RetrievalHit, error) {
	return r.backend.FindNearest(ctx, vector, limit)
}

// WithTransaction delegates to the backend.
func (r *CandidateRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// UpsertCandidates inserts or replaces candidate records keyed by ID.
func (r *CandidateRepository) UpsertCandidates(ctx context.Context, records ...*core.CandidateRecord) ([]*core.CandidateRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		now := time.Now().UTC()
		for _, record := range records {
			if record.ID == "" {
				return core.ErrEmptyID
			}

			key := makeCandidateKey(record.ID)

			// Preserve InsertedAt when replacing an existing record
			old, err := r.readCandidateRecord(tx, key)
			if err != nil {
				return err
			}
			if old != nil {
				record.InsertedAt = old.InsertedAt
			} else {
				record.InsertedAt = now
			}
			record.UpdatedAt = now

			value := storage.MarshalCandidateRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// DeleteCandidates removes candidate records by their IDs.
func (r *CandidateRepository) DeleteCandidates(ctx context.Context, ids ...string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeCandidateKey(id)

			record, err := r.readCandidateRecord(tx, key)
			if err != nil {
				return err
			}
			if record == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetCandidate retrieves a single candidate record by ID.
func (r *CandidateRepository) GetCandidate(ctx context.Context, id string) (*core.CandidateRecord, error) {
	var result *core.CandidateRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeCandidateKey(id)
		var err error
		result, err = r.readCandidateRecord(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetCandidates retrieves multiple candidate records by their IDs.
func (r *CandidateRepository) GetCandidates(ctx context.Context, ids ...string) ([]*core.CandidateRecord, error) {
	var result []*core.CandidateRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeCandidateKey(id)
			record, err := r.readCandidateRecord(tx, key)
			if err != nil {
				return err
			}
			if record != nil {
				result = append(result, record)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetAllCandidates retrieves every stored candidate record.
func (r *CandidateRepository) GetAllCandidates(ctx context.Context) ([]*core.CandidateRecord, error) {
	var results []*core.CandidateRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(candidateRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.CandidateRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalCandidateRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)
	return results, err
}

// CountCandidates returns the number of stored candidate records.
func (r *CandidateRepository) CountCandidates(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(candidateRecordPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readCandidateRecord reads a candidate record from the transaction.
func (r *CandidateRepository) readCandidateRecord(tx *badger.Txn, key []byte) (*core.CandidateRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.CandidateRecord
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		record, unmarshalErr = storage.UnmarshalCandidateRecord(val)
		return unmarshalErr
	})
	return record, err
}
