package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Product is a catalog item as supplied by the store. The answer engine
// treats it as an immutable snapshot; FAQ entries are stored separately
// and loaded per request.
type Product struct {
	Id          ID
	Title       string
	Description string  // Free-text description, source for sentence extraction
	Price       float64 // In RON
	Rating      float64
	Stock       int32
	Category    string // Category name, may be empty
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// FAQEntry is a question/answer pair attached to a product.
// Compared only by normalized question text; the answer is returned verbatim.
type FAQEntry struct {
	Id        ID
	ProductId ID
	Question  string
	Answer    string
	CreatedAt time.Time // Per-product FAQ order is CreatedAt order
}

// Tuple returns a string representation of the entry as "(productId,question)".
// This is used for generating deterministic IDs.
func (f *FAQEntry) Tuple() string {
	return "(" + strconv.FormatUint(uint64(f.ProductId), 10) + "," + f.Question + ")"
}
