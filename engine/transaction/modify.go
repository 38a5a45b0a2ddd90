package transaction

import (
	"github.com/pingcap-incubator/tinybase/engine/schema"
	"github.com/pingcap/errors"
)

// OperationKind is the smallest unit of mutation a transaction records against a table.
type OperationKind int

const (
	OpNone OperationKind = iota
	OpRefDelete
	OpTruncateColumn
	OpTruncateRow
	OpBasicColumn
	OpBasicRow
	OpInMemColumn
	OpInMemRow
)

// RecnoNone is the reserved out-of-band record number. No live column record may use it.
const RecnoNone uint64 = 0

// HasKey reports whether the operation has a definite position in its table's key
// space. Structural operations (truncates, reference deletes) summarize a range rather
// than a point and carry no key.
func (k OperationKind) HasKey() bool {
	switch k {
	case OpBasicColumn, OpBasicRow, OpInMemColumn, OpInMemRow:
		return true
	}
	return false
}

func (k OperationKind) isColumn() bool {
	return k == OpBasicColumn || k == OpInMemColumn
}

func (k OperationKind) isRow() bool {
	return k == OpBasicRow || k == OpInMemRow
}

func (k OperationKind) String() string {
	switch k {
	case OpNone:
		return "none"
	case OpRefDelete:
		return "ref-delete"
	case OpTruncateColumn:
		return "truncate-col"
	case OpTruncateRow:
		return "truncate-row"
	case OpBasicColumn:
		return "basic-col"
	case OpBasicRow:
		return "basic-row"
	case OpInMemColumn:
		return "inmem-col"
	case OpInMemRow:
		return "inmem-row"
	}
	return "unknown"
}

var (
	// ErrInvalidOperation means a modification was built with a payload that does not
	// match its kind or its table: a reserved record number, an empty row key, or a
	// keyed kind on the wrong storage kind. The record is rejected before it can enter
	// a write set; retrying with the same input cannot succeed.
	ErrInvalidOperation = errors.New("transaction: invalid modification")

	// ErrInconsistentSchema means two modifications share a table id but disagree on
	// the table's storage kind. That indicates registry corruption or a caller bug; it
	// aborts the sort or validation in progress and is not recoverable here.
	ErrInconsistentSchema = errors.New("transaction: modifications disagree on storage kind for one table id")
)

// Modification is one recorded write. It holds a non-owning reference to the table's
// descriptor; the registry outlives any transaction. Row keys are borrowed from
// caller-managed storage and must stay live until the write set is resolved.
//
// Exactly one of Recno and Key is meaningful, decided by Kind: column kinds carry a
// record number, row kinds a key, unkeyed kinds neither.
type Modification struct {
	Table *schema.TableDescriptor
	Kind  OperationKind
	Recno uint64
	Key   []byte
}

// NewColumnModification builds a keyed modification positioned at recno on a column
// table.
func NewColumnModification(table *schema.TableDescriptor, kind OperationKind, recno uint64) (Modification, error) {
	if !kind.isColumn() {
		return Modification{}, errors.Annotatef(ErrInvalidOperation, "%s does not take a record number", kind)
	}
	if !table.Kind.IsColumn() {
		return Modification{}, errors.Annotatef(ErrInvalidOperation, "table %d is a %s store, not a column store", table.ID, table.Kind)
	}
	if recno == RecnoNone {
		return Modification{}, errors.Annotatef(ErrInvalidOperation, "record number %d is reserved", RecnoNone)
	}
	return Modification{Table: table, Kind: kind, Recno: recno}, nil
}

// NewRowModification builds a keyed modification positioned at key on a row table. The
// key is borrowed, not copied.
func NewRowModification(table *schema.TableDescriptor, kind OperationKind, key []byte) (Modification, error) {
	if !kind.isRow() {
		return Modification{}, errors.Annotatef(ErrInvalidOperation, "%s does not take a row key", kind)
	}
	if table.Kind != schema.StorageRow {
		return Modification{}, errors.Annotatef(ErrInvalidOperation, "table %d is a %s store, not a row store", table.ID, table.Kind)
	}
	if len(key) == 0 {
		return Modification{}, errors.Annotate(ErrInvalidOperation, "empty row key")
	}
	return Modification{Table: table, Kind: kind, Key: key}, nil
}

// NewUnkeyedModification builds a structural modification (truncate, reference delete,
// or a no-op placeholder) with no position in key space.
func NewUnkeyedModification(table *schema.TableDescriptor, kind OperationKind) (Modification, error) {
	if kind.HasKey() {
		return Modification{}, errors.Annotatef(ErrInvalidOperation, "%s requires a key or record number", kind)
	}
	return Modification{Table: table, Kind: kind}, nil
}
