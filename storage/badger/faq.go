package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/pasvio/vitrina/core"
	"github.com/pasvio/vitrina/storage"
)

// FAQRepository implements storage.FAQRepository for BadgerDB.
type FAQRepository struct {
	backend *Backend
}

var _ storage.FAQRepository = (*FAQRepository)(nil)

// NewFAQRepository creates a new FAQRepository.
func NewFAQRepository(backend *Backend) (*FAQRepository, error) {
	return &FAQRepository{
		backend: backend,
	}, nil
}

// Close releases resources. FAQRepository has no resources to release.
func (r *FAQRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *FAQRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddFAQs adds one or more FAQ entries to storage.
func (r *FAQRepository) AddFAQs(ctx context.Context, entries ...*core.FAQEntry) ([]*core.FAQEntry, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			// Use content-based ID if not set
			if entry.Id == 0 {
				entry.Id = core.IDFromContent(entry.Tuple())
			}

			if entry.CreatedAt.IsZero() {
				entry.CreatedAt = time.Now().UTC()
			}

			key := makeFAQKey(entry.Id)

			// Re-adding the same (product, question) tuple overwrites
			// in place; drop the old index entry so the creation-order
			// index holds a single key per entry.
			old, err := r.readFAQEntry(tx, key)
			if err != nil {
				return err
			}
			if old != nil {
				oldIndexKey := makeFAQProductKey(old.ProductId, old.CreatedAt, old.Id)
				if err := tx.Delete(oldIndexKey); err != nil {
					return err
				}
			}

			// Store primary record
			value := storage.MarshalFAQEntry(entry)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Store per-product index
			indexKey := makeFAQProductKey(entry.ProductId, entry.CreatedAt, entry.Id)
			if err := tx.Set(indexKey, storage.MarshalID(entry.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return entries, err
}

// DeleteFAQs removes FAQ entries by their IDs.
func (r *FAQRepository) DeleteFAQs(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeFAQKey(id)

			// Read entry to get metadata for index cleanup
			entry, err := r.readFAQEntry(tx, key)
			if err != nil {
				return err
			}
			if entry == nil {
				return storage.ErrNotFound
			}

			// Delete from per-product index
			indexKey := makeFAQProductKey(entry.ProductId, entry.CreatedAt, entry.Id)
			if err := tx.Delete(indexKey); err != nil {
				return err
			}

			// Delete primary record
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetFAQ retrieves a single FAQ entry by ID.
func (r *FAQRepository) GetFAQ(ctx context.Context, id core.ID) (*core.FAQEntry, error) {
	var result *core.FAQEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeFAQKey(id)
		var err error
		result, err = r.readFAQEntry(tx, key)
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

// GetFAQsForProduct retrieves all FAQ entries for a product in creation order.
func (r *FAQRepository) GetFAQsForProduct(ctx context.Context, productID core.ID) ([]*core.FAQEntry, error) {
	var results []*core.FAQEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialFAQProductKey(productID)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			// Check if key still has our productID prefix
			if len(key) < len(startKey) {
				break
			}
			if slices.Compare(key[:len(startKey)], startKey) != 0 {
				break
			}

			// Read the entry ID from the index
			var faqID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				faqID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full record
			faqKey := makeFAQKey(faqID)
			entry, err := r.readFAQEntry(tx, faqKey)
			if err != nil {
				return err
			}
			if entry != nil {
				results = append(results, entry)
			}
		}
		return nil
	}, false)

	return results, err
}

// Helper methods

// readFAQEntry reads a FAQ entry from the transaction.
func (r *FAQRepository) readFAQEntry(tx *badger.Txn, key []byte) (*core.FAQEntry, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var entry *core.FAQEntry
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		entry, unmarshalErr = storage.UnmarshalFAQEntry(val)
		return unmarshalErr
	})
	return entry, err
}
