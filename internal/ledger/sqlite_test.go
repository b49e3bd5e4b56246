package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteSink_BalanceSumsDeltas(t *testing.T) {
	sink, err := NewSQLiteSink(":memory:")
	require.NoError(t, err)
	defer sink.Close()

	ctx := context.Background()
	require.NoError(t, sink.RecordDelta(ctx, "p1", 25))
	require.NoError(t, sink.RecordDelta(ctx, "p1", -10))
	require.NoError(t, sink.RecordDelta(ctx, "p2", 100))

	bal, err := sink.Balance(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 15, bal)

	bal, err = sink.Balance(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, 100, bal)
}

func TestSQLiteSink_BalanceUnknownPlayerIsZero(t *testing.T) {
	sink, err := NewSQLiteSink(":memory:")
	require.NoError(t, err)
	defer sink.Close()

	bal, err := sink.Balance(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, bal)
}

func TestNoopSink(t *testing.T) {
	sink := NewNoopSink()
	require.NoError(t, sink.RecordDelta(context.Background(), "p1", 42))

	bal, err := sink.Balance(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, bal)
	assert.NoError(t, sink.Close())
}
