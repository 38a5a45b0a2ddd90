package schema

import "bytes"

// StorageKind describes how a table lays out its records, which in turn decides how a
// write on that table is positioned: row stores position writes by key bytes, column
// stores by record number.
type StorageKind int

const (
	StorageRow StorageKind = iota + 1
	StorageColumnFix
	StorageColumnVar
)

// IsColumn reports whether the kind positions records by record number.
func (k StorageKind) IsColumn() bool {
	return k == StorageColumnFix || k == StorageColumnVar
}

func (k StorageKind) String() string {
	switch k {
	case StorageRow:
		return "row"
	case StorageColumnFix:
		return "column-fix"
	case StorageColumnVar:
		return "column-var"
	}
	return "unknown"
}

// A Collation decides the order of row-store keys. Tables that do not set one use
// byte-wise comparison.
type Collation interface {
	// Compare returns a negative number if a sorts before b, a positive number if a
	// sorts after b, and zero if the keys are equal.
	Compare(a, b []byte) int
}

// CollationFunc adapts an ordinary comparison function to the Collation interface.
type CollationFunc func(a, b []byte) int

func (f CollationFunc) Compare(a, b []byte) int { return f(a, b) }

// ByteCollation is the default row-key order, memcmp semantics: a key that is a strict
// prefix of another sorts first.
var ByteCollation Collation = CollationFunc(bytes.Compare)

// TableDescriptor identifies one table to the transaction layer. The id is assigned
// when the table is registered and never changes; a Collation is only meaningful for
// row stores.
//
// Descriptors are shared: the registry owns them, writers hold non-owning references.
type TableDescriptor struct {
	ID        uint32
	Kind      StorageKind
	Collation Collation
}

// CompareKeys compares two row keys under the table's collation.
func (d *TableDescriptor) CompareKeys(a, b []byte) int {
	if d.Collation != nil {
		return d.Collation.Compare(a, b)
	}
	return bytes.Compare(a, b)
}
