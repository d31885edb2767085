package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/pasvio/vitrina/core"
)

// Key prefixes for different data types
const (
	productRecordPrefix   = "prodrec"
	productCategoryPrefix = "prodcat"
	productIDSeq          = "prodrecseq"
	faqRecordPrefix       = "faqrec"
	faqProductPrefix      = "faqprod"
)

// makeProductKey generates a key for a product by ID.
func makeProductKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", productRecordPrefix, id))
}

// makeCategoryKey generates a composite key for the category index.
// Format: prefix:category:id
func makeCategoryKey(category string, id core.ID) []byte {
	prefix := productCategoryPrefix + ":" + category + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialCategoryKey generates a partial key for category queries.
// Format: prefix:category:
func makePartialCategoryKey(category string) []byte {
	return []byte(productCategoryPrefix + ":" + category + ":")
}

// makeFAQKey generates a key for a FAQ entry by ID.
func makeFAQKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", faqRecordPrefix, id))
}

// makeFAQProductKey generates a composite key for the per-product FAQ index.
// Format: prefix:productID:createdAt:faqID
func makeFAQProductKey(productID core.ID, createdAt time.Time, faqID core.ID) []byte {
	prefix := faqProductPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 24 // productID + timestamp + faqID, 8 bytes each
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(productID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(createdAt.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(faqID))
	return buf
}

// makePartialFAQProductKey generates a partial key for per-product FAQ queries.
// Format: prefix:productID
func makePartialFAQProductKey(productID core.ID) []byte {
	prefix := faqProductPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for productID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(productID))
	return buf
}
