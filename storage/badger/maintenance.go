package badger

import (
	"github.com/dgraph-io/badger/v4"

	"github.com/pasvio/vitrina/core"
	"github.com/pasvio/vitrina/storage"
)

// IndexStats reports how many records were reindexed.
type IndexStats struct {
	Products   int
	FAQEntries int
}

// RebuildIndexes drops and regenerates the category and per-product FAQ
// indexes from the primary records. Intended for maintenance after manual
// data surgery or a version upgrade that changed index key layout.
func RebuildIndexes(backend *Backend) (IndexStats, error) {
	var stats IndexStats

	if err := dropIndexKeys(backend, []byte(productCategoryPrefix+":")); err != nil {
		return stats, err
	}
	if err := dropIndexKeys(backend, []byte(faqProductPrefix+":")); err != nil {
		return stats, err
	}

	err := backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := []byte(productRecordPrefix + ":")
		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			item := iter.Item()
			if !hasPrefix(item.Key(), prefix) {
				break
			}

			var product *core.Product
			if err := item.Value(func(val []byte) error {
				var err error
				product, err = storage.UnmarshalProduct(val)
				return err
			}); err != nil {
				return err
			}

			if product.Category != "" {
				catKey := makeCategoryKey(product.Category, product.Id)
				if err := tx.Set(catKey, storage.MarshalID(product.Id)); err != nil {
					return err
				}
			}
			stats.Products++
		}
		iter.Close()
		return tx.Commit()
	}, true)
	if err != nil {
		return stats, err
	}

	err = backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := []byte(faqRecordPrefix + ":")
		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			item := iter.Item()
			if !hasPrefix(item.Key(), prefix) {
				break
			}

			var entry *core.FAQEntry
			if err := item.Value(func(val []byte) error {
				var err error
				entry, err = storage.UnmarshalFAQEntry(val)
				return err
			}); err != nil {
				return err
			}

			indexKey := makeFAQProductKey(entry.ProductId, entry.CreatedAt, entry.Id)
			if err := tx.Set(indexKey, storage.MarshalID(entry.Id)); err != nil {
				return err
			}
			stats.FAQEntries++
		}
		iter.Close()
		return tx.Commit()
	}, true)

	return stats, err
}

// dropIndexKeys deletes every key under the given prefix.
func dropIndexKeys(backend *Backend, prefix []byte) error {
	// Collect first; deleting under an open iterator is undefined.
	var keys [][]byte
	err := backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if !hasPrefix(key, prefix) {
				break
			}
			keys = append(keys, iter.Item().KeyCopy(nil))
		}
		return nil
	}, false)
	if err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}

	return backend.WithTx(func(tx *badger.Txn) error {
		for _, key := range keys {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}
