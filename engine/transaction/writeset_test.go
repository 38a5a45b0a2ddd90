package transaction

import (
	"testing"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSetFinalize(t *testing.T) {
	rowT := rowTable(2)
	colT := colTable(1)

	ws := NewWriteSet(true)
	require.NoError(t, ws.RecordRow(rowT, OpBasicRow, []byte("54")))
	require.NoError(t, ws.RecordColumn(colT, OpBasicColumn, 45))
	require.NoError(t, ws.RecordRow(rowT, OpBasicRow, []byte("4")))
	require.NoError(t, ws.RecordUnkeyed(rowT, OpTruncateRow))
	require.NoError(t, ws.RecordColumn(colT, OpBasicColumn, 12))
	require.Equal(t, 5, ws.Len())

	require.NoError(t, ws.Finalize())

	mods := ws.Modifications()
	requireCanonical(t, mods)
	// Table 1 before table 2, recnos ascending within it.
	assert.Equal(t, uint32(1), mods[0].Table.ID)
	assert.Equal(t, uint64(12), mods[0].Recno)
	assert.Equal(t, uint64(45), mods[1].Recno)
}

func TestWriteSetRejectsInvalidRecords(t *testing.T) {
	ws := NewWriteSet(false)

	err := ws.RecordColumn(colTable(1), OpBasicColumn, RecnoNone)
	require.Error(t, err)
	assert.Equal(t, ErrInvalidOperation, errors.Cause(err))

	err = ws.RecordRow(rowTable(2), OpBasicRow, nil)
	require.Error(t, err)
	assert.Equal(t, ErrInvalidOperation, errors.Cause(err))

	err = ws.RecordUnkeyed(rowTable(2), OpBasicRow)
	require.Error(t, err)
	assert.Equal(t, ErrInvalidOperation, errors.Cause(err))

	// Nothing malformed ever entered the set.
	assert.Equal(t, 0, ws.Len())
	require.NoError(t, ws.Finalize())
}

func TestWriteSetFinalizeInconsistentSchema(t *testing.T) {
	ws := NewWriteSet(false)
	require.NoError(t, ws.RecordColumn(colTable(7), OpBasicColumn, 3))
	require.NoError(t, ws.RecordRow(rowTable(7), OpBasicRow, []byte("a")))

	err := ws.Finalize()
	require.Error(t, err)
	assert.Equal(t, ErrInconsistentSchema, errors.Cause(err))
}
