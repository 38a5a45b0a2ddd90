package transaction

import (
	"github.com/pingcap-incubator/tinybase/engine/schema"
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// WriteSet collects the modifications one transaction makes. It is private to the
// thread running the transaction; nothing here locks. Records accumulate in the order
// the writes happened and are put into canonical order exactly once, by Finalize.
type WriteSet struct {
	mods []Modification

	// recheck re-validates the order after every Finalize. Meant for tests and debug
	// deployments; see config.Config.OrderRecheck.
	recheck bool
}

// NewWriteSet creates an empty write set.
func NewWriteSet(recheck bool) *WriteSet {
	return &WriteSet{recheck: recheck}
}

// Modifications returns all records collected so far. After a successful Finalize the
// returned slice is in canonical order.
func (ws *WriteSet) Modifications() []Modification {
	return ws.mods
}

// Len returns the number of collected records.
func (ws *WriteSet) Len() int {
	return len(ws.mods)
}

// RecordColumn records a write positioned at recno on a column table.
func (ws *WriteSet) RecordColumn(table *schema.TableDescriptor, kind OperationKind, recno uint64) error {
	m, err := NewColumnModification(table, kind, recno)
	if err != nil {
		return errors.Trace(err)
	}
	ws.mods = append(ws.mods, m)
	return nil
}

// RecordRow records a write positioned at key on a row table. The key is borrowed; it
// must stay live until the write set is resolved.
func (ws *WriteSet) RecordRow(table *schema.TableDescriptor, kind OperationKind, key []byte) error {
	m, err := NewRowModification(table, kind, key)
	if err != nil {
		return errors.Trace(err)
	}
	ws.mods = append(ws.mods, m)
	return nil
}

// RecordUnkeyed records a structural operation (truncate, reference delete).
func (ws *WriteSet) RecordUnkeyed(table *schema.TableDescriptor, kind OperationKind) error {
	m, err := NewUnkeyedModification(table, kind)
	if err != nil {
		return errors.Trace(err)
	}
	ws.mods = append(ws.mods, m)
	return nil
}

// Finalize puts the collected records into canonical order. Call it once, after the
// transaction's last write and before the records are consumed by the log writer or
// applier. On error the write set must be discarded; its order is unspecified to the
// consumers.
func (ws *WriteSet) Finalize() error {
	if err := SortModifications(ws.mods); err != nil {
		log.Error("write set cannot be ordered", zap.Int("mods", len(ws.mods)), zap.Error(err))
		return errors.Trace(err)
	}

	if ws.recheck {
		ok, err := InCanonicalOrder(ws.mods)
		if err != nil {
			return errors.Trace(err)
		}
		if !ok {
			log.Error("write set failed order re-check", zap.Int("mods", len(ws.mods)))
			return errors.New("transaction: sorted write set failed order re-check")
		}
	}
	return nil
}
