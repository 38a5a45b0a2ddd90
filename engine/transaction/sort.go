package transaction

import (
	"sort"

	"github.com/pingcap-incubator/tinybase/engine/schema"
	"github.com/pingcap/errors"
)

// Compare is the canonical three-way order over modifications. Rules, first match
// wins:
//
//  1. Different table ids order by id ascending, so one table's writes end up
//     contiguous.
//  2. On the same table, an unkeyed operation ties with anything; it has no fixed
//     position among the table's keyed writes.
//  3. Two keyed row-store writes order by key under the table's collation.
//  4. Two keyed column-store writes order by record number.
//
// Two keyed records sharing a table id but disagreeing on the table's storage kind
// cannot happen under a well-formed registry; Compare reports ErrInconsistentSchema
// instead of guessing.
func Compare(a, b *Modification) (int, error) {
	if a.Table.ID != b.Table.ID {
		if a.Table.ID < b.Table.ID {
			return -1, nil
		}
		return 1, nil
	}

	if !a.Kind.HasKey() || !b.Kind.HasKey() {
		return 0, nil
	}

	if a.Table.Kind != b.Table.Kind {
		return 0, errors.Annotatef(ErrInconsistentSchema, "table %d seen as both %s and %s", a.Table.ID, a.Table.Kind, b.Table.Kind)
	}

	if a.Table.Kind == schema.StorageRow {
		return a.Table.CompareKeys(a.Key, b.Key), nil
	}

	switch {
	case a.Recno < b.Recno:
		return -1, nil
	case a.Recno > b.Recno:
		return 1, nil
	}
	return 0, nil
}

// SortModifications rearranges mods in place into canonical order. Callers run this
// once per transaction, after the last write and before the records reach the log
// writer or applier. Any O(n log n) comparison sort satisfies the consumers; the sort
// is not stable, so ties may land in a different order on every call.
//
// Storage kinds are cross-checked before anything moves, so on ErrInconsistentSchema
// the list is returned untouched rather than partially reordered.
func SortModifications(mods []Modification) error {
	if err := checkStorageKinds(mods); err != nil {
		return errors.Trace(err)
	}
	sort.Slice(mods, func(i, j int) bool {
		c, _ := Compare(&mods[i], &mods[j])
		return c < 0
	})
	return nil
}

// checkStorageKinds verifies that every keyed record sharing a table id also shares a
// storage kind. Unkeyed records never reach a kind comparison, so they are not
// checked.
func checkStorageKinds(mods []Modification) error {
	kinds := make(map[uint32]schema.StorageKind, len(mods))
	for i := range mods {
		if !mods[i].Kind.HasKey() {
			continue
		}
		id := mods[i].Table.ID
		kind, seen := kinds[id]
		if !seen {
			kinds[id] = mods[i].Table.Kind
			continue
		}
		if kind != mods[i].Table.Kind {
			return errors.Annotatef(ErrInconsistentSchema, "table %d seen as both %s and %s", id, kind, mods[i].Table.Kind)
		}
	}
	return nil
}

// InCanonicalOrder reports whether mods already satisfies the canonical order. Every
// adjacent pair is checked; one conforming pair proves nothing about the pairs after
// it. Table ids must be non-decreasing, same-table keyed pairs must be ordered by key
// or recno, and a same-table pair with an unkeyed member is always acceptable.
func InCanonicalOrder(mods []Modification) (bool, error) {
	ordered := true
	for i := 0; i+1 < len(mods); i++ {
		a, b := &mods[i], &mods[i+1]

		if a.Table.ID != b.Table.ID {
			if a.Table.ID > b.Table.ID {
				ordered = false
			}
			continue
		}

		if !a.Kind.HasKey() || !b.Kind.HasKey() {
			continue
		}

		c, err := Compare(a, b)
		if err != nil {
			return false, errors.Trace(err)
		}
		if c > 0 {
			ordered = false
		}
	}
	return ordered, nil
}
