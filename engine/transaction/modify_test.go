package transaction

import (
	"testing"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationKindHasKey(t *testing.T) {
	keyed := []OperationKind{OpBasicColumn, OpBasicRow, OpInMemColumn, OpInMemRow}
	for _, k := range keyed {
		assert.True(t, k.HasKey(), k.String())
	}
	for _, k := range unkeyedKinds {
		assert.False(t, k.HasKey(), k.String())
	}
}

func TestNewColumnModification(t *testing.T) {
	table := colTable(1)

	m, err := NewColumnModification(table, OpBasicColumn, 54)
	require.NoError(t, err)
	assert.Equal(t, uint64(54), m.Recno)
	assert.Nil(t, m.Key)

	// The reserved record number never enters a write set.
	_, err = NewColumnModification(table, OpBasicColumn, RecnoNone)
	require.Error(t, err)
	assert.Equal(t, ErrInvalidOperation, errors.Cause(err))

	// Row kinds do not take record numbers.
	_, err = NewColumnModification(table, OpBasicRow, 54)
	require.Error(t, err)
	assert.Equal(t, ErrInvalidOperation, errors.Cause(err))

	// Column payloads only make sense on column tables.
	_, err = NewColumnModification(rowTable(2), OpBasicColumn, 54)
	require.Error(t, err)
	assert.Equal(t, ErrInvalidOperation, errors.Cause(err))

	_, err = NewColumnModification(table, OpInMemColumn, 1)
	require.NoError(t, err)
}

func TestNewRowModification(t *testing.T) {
	table := rowTable(1)

	m, err := NewRowModification(table, OpBasicRow, []byte("51"))
	require.NoError(t, err)
	assert.Equal(t, []byte("51"), m.Key)
	assert.Equal(t, RecnoNone, m.Recno)

	_, err = NewRowModification(table, OpBasicRow, nil)
	require.Error(t, err)
	assert.Equal(t, ErrInvalidOperation, errors.Cause(err))

	_, err = NewRowModification(table, OpBasicRow, []byte{})
	require.Error(t, err)
	assert.Equal(t, ErrInvalidOperation, errors.Cause(err))

	_, err = NewRowModification(table, OpBasicColumn, []byte("51"))
	require.Error(t, err)
	assert.Equal(t, ErrInvalidOperation, errors.Cause(err))

	_, err = NewRowModification(colTable(2), OpBasicRow, []byte("51"))
	require.Error(t, err)
	assert.Equal(t, ErrInvalidOperation, errors.Cause(err))
}

func TestNewUnkeyedModification(t *testing.T) {
	for _, k := range unkeyedKinds {
		m, err := NewUnkeyedModification(rowTable(1), k)
		require.NoError(t, err, k.String())
		assert.Equal(t, RecnoNone, m.Recno)
		assert.Nil(t, m.Key)
	}

	_, err := NewUnkeyedModification(rowTable(1), OpBasicRow)
	require.Error(t, err)
	assert.Equal(t, ErrInvalidOperation, errors.Cause(err))
}
