// Package ident generates item identifiers.
package ident

import (
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// Length is the length of every generated identifier. 25 base-36 digits
// cover all 128 bits of a UUID.
const Length = 25

// New returns a new identifier. The identifier is a UUIDv7 (millisecond
// timestamp followed by random bits) written in base 36, so identifiers
// created later sort after earlier ones.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Only fails when the entropy source does; v4 panics in the same case.
		id = uuid.New()
	}
	return Encode(id)
}

// Encode writes a UUID as a fixed-width lowercase base-36 string.
func Encode(id uuid.UUID) string {
	s := new(big.Int).SetBytes(id[:]).Text(36)
	if len(s) < Length {
		s = strings.Repeat("0", Length-len(s)) + s
	}
	return s
}
