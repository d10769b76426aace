package dataset

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-dashboard/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
	"go.uber.org/mock/gomock"
)

func sampleSales() []domain.Sale {
	return []domain.Sale{
		{Date: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), Customer: "C1", Product: "P1", Category: "Cat", Channel: "Web", Quantity: 1, Amount: decimal.NewFromInt(100)},
		{Date: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), Customer: "C2", Product: "P2", Category: "Cat", Channel: "Web", Quantity: 2, Amount: decimal.NewFromInt(200)},
	}
}

func TestStore_SnapshotBeforeLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSalesRepository(ctrl)
	repo.EXPECT().Source().Return("csv:ventas.csv").AnyTimes()

	store := NewStore(repo)

	snapshot, err := store.Snapshot()
	assert.Nil(t, snapshot)
	assert.ErrorIs(t, err, ErrNotLoaded)

	status := store.Status()
	assert.Equal(t, "csv:ventas.csv", status.Source)
	assert.Nil(t, status.LoadedAt)
	assert.Nil(t, status.LastAttemptAt)
}

func TestStore_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSalesRepository(ctrl)
	repo.EXPECT().Source().Return("csv:ventas.csv").AnyTimes()

	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(repo)
	store.now = func() time.Time { return fixed }

	repo.EXPECT().LoadSales(gomock.Any()).Return(sampleSales(), nil)

	require.NoError(t, store.Load(context.Background()))

	snapshot, err := store.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snapshot.Sales, 2)
	assert.Equal(t, int64(1), snapshot.Version)
	assert.Equal(t, fixed, snapshot.LoadedAt)
	assert.Equal(t, "csv:ventas.csv", snapshot.Source)

	status := store.Status()
	assert.Equal(t, 2, status.Rows)
	assert.Equal(t, int64(1), status.Version)
	assert.Empty(t, status.LastError)
}

func TestStore_FailedReloadKeepsPreviousSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSalesRepository(ctrl)
	repo.EXPECT().Source().Return("csv:ventas.csv").AnyTimes()

	store := NewStore(repo)

	gomock.InOrder(
		repo.EXPECT().LoadSales(gomock.Any()).Return(sampleSales(), nil),
		repo.EXPECT().LoadSales(gomock.Any()).Return(nil, errors.New("linha 3: data inválida")),
		repo.EXPECT().LoadSales(gomock.Any()).Return(sampleSales()[:1], nil),
	)

	require.NoError(t, store.Load(context.Background()))

	err := store.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "linha 3: data inválida")

	snapshot, err := store.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snapshot.Sales, 2)
	assert.Equal(t, int64(1), snapshot.Version)
	assert.Equal(t, "linha 3: data inválida", store.Status().LastError)

	require.NoError(t, store.Load(context.Background()))
	snapshot, err = store.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snapshot.Sales, 1)
	assert.Equal(t, int64(2), snapshot.Version)
	assert.Empty(t, store.Status().LastError)
}

func TestStore_StatusDuringLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSalesRepository(ctrl)
	repo.EXPECT().Source().Return("postgres").AnyTimes()

	started := make(chan struct{})
	release := make(chan struct{})
	repo.EXPECT().LoadSales(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]domain.Sale, error) {
		close(started)
		<-release
		return sampleSales(), nil
	})

	store := NewStore(repo)

	loadDone := make(chan error, 1)
	go func() { loadDone <- store.Load(context.Background()) }()
	<-started

	statusDone := make(chan Status, 1)
	go func() { statusDone <- store.Status() }()

	select {
	case status := <-statusDone:
		assert.NotNil(t, status.LastAttemptAt)
		assert.Nil(t, status.LoadedAt)
	case <-time.After(time.Second):
		t.Fatal("Status bloqueou durante a carga")
	}

	close(release)
	require.NoError(t, <-loadDone)
	assert.Equal(t, 2, store.Status().Rows)
}
