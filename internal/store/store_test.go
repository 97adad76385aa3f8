package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zengzengppp/Voice-order-generator/internal/customer"
	"github.com/zengzengppp/Voice-order-generator/internal/order"
)

func TestMemoryRoundtrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Put(ctx, "k", []byte(`[1,2]`)))
	data, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2]`), data)

	// The stored blob must not alias the caller's slice.
	data[0] = 'X'
	again, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2]`), again)
}

func TestSnapshotRoundtrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	snap := Snapshot{
		Orders: []order.Order{{
			ID:         "o1",
			Date:       time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
			CustomerID: "c1",
			Items:      []order.Item{{Name: "番茄", Quantity: 2, Unit: "斤", Price: 5}},
			GrandTotal: 10,
		}},
		Customers: []customer.Customer{{ID: "c1", Name: "默认厂家"}},
	}
	require.NoError(t, Save(ctx, m, snap))

	got, err := Load(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, snap.Orders, got.Orders)
	assert.Equal(t, snap.Customers, got.Customers)
}

func TestLoadMissingBlobsStartsClean(t *testing.T) {
	got, err := Load(context.Background(), NewMemory())
	require.NoError(t, err)
	assert.Empty(t, got.Orders)
	assert.Empty(t, got.Customers)
}

type failingBlobs struct{ err error }

func (f failingBlobs) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingBlobs) Put(context.Context, string, []byte) error   { return f.err }

func TestLoadPropagatesStoreErrors(t *testing.T) {
	// Only ErrNotFound means "start clean"; an outage must surface so the
	// caller fails fast instead of running on an empty snapshot.
	boom := errors.New("connection refused")
	_, err := Load(context.Background(), failingBlobs{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestLoadIgnoresOtherKeyVersions(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	// Historical formats live under other version suffixes and are never
	// picked up.
	require.NoError(t, m.Put(ctx, "orders_v12", []byte(`{"legacy":true}`)))

	got, err := Load(ctx, m)
	require.NoError(t, err)
	assert.Empty(t, got.Orders)
}
