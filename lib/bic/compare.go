// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bic

import (
	"encoding/binary"
	"slices"
	"strings"

	"github.com/zeebo/blake3"
)

// hashDomainKey keys the BLAKE3 hash behind BIC.Hash. Changing it
// changes every hash value. ASCII "bic.canonical", zero-padded to 32
// bytes.
var hashDomainKey = [32]byte{
	'b', 'i', 'c', '.', 'c', 'a', 'n', 'o', 'n', 'i', 'c', 'a', 'l', 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Equal reports whether b and other identify the same institution and
// branch, i.e. have the same canonical form.
func (b BIC) Equal(other BIC) bool { return b.canonical == other.canonical }

// Compare orders a and b by canonical form, byte by byte. It returns
// -1, 0 or +1 and can be passed to slices.SortFunc.
//
// Because the primary branch is canonically 8 characters, an
// institution's primary office sorts directly before its explicit
// branches.
func Compare(a, b BIC) int { return strings.Compare(a.canonical, b.canonical) }

// Compare is the method form of the package-level Compare.
func (b BIC) Compare(other BIC) int { return Compare(b, other) }

// Less reports whether b sorts before other.
func (b BIC) Less(other BIC) bool { return Compare(b, other) < 0 }

// Hash returns a 64-bit hash of the canonical form. Equal BICs have
// equal hashes. The value is stable across processes and releases, so
// it can be used for partitioning; it is not a substitute for Equal.
func (b BIC) Hash() uint64 {
	// NewKeyed only fails for keys that are not 32 bytes.
	hasher, err := blake3.NewKeyed(hashDomainKey[:])
	if err != nil {
		panic("bic: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write([]byte(b.canonical))
	return binary.LittleEndian.Uint64(hasher.Sum(nil)[:8])
}

// Sort sorts codes in place by canonical form. Equal codes keep their
// relative order.
func Sort(codes []BIC) {
	slices.SortStableFunc(codes, Compare)
}

// Unique sorts codes and removes entries equal to an earlier one,
// keeping the first occurrence of each canonical form. It modifies
// codes and returns the shortened slice.
func Unique(codes []BIC) []BIC {
	Sort(codes)
	return slices.CompactFunc(codes, BIC.Equal)
}
