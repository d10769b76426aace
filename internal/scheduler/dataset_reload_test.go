package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-dashboard/internal/config"
	"github.com/vfg2006/retail-sales-dashboard/internal/dataset"
	"github.com/vfg2006/retail-sales-dashboard/internal/scheduler/mocks"
	"go.uber.org/mock/gomock"
)

func newReloadService(t *testing.T, enabled bool) (*DatasetReloadService, *mocks.MockDatasetLoader) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockDatasetLoader(ctrl)

	cfg := &config.Config{}
	cfg.Dataset.ReloadCron = "0 * * * *"
	cfg.Dataset.ReloadEnabled = enabled

	return NewDatasetReloadService(loader, cfg), loader
}

func TestDatasetReloadService_Reload(t *testing.T) {
	tests := []struct {
		name    string
		loadErr error
	}{
		{name: "Recarga com sucesso"},
		{name: "Recarga com erro", loadErr: errors.New("arquivo não encontrado")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, loader := newReloadService(t, false)
			loader.EXPECT().Load(gomock.Any()).Return(tt.loadErr)
			loader.EXPECT().Status().Return(dataset.Status{Source: "csv:ventas.csv"})

			err := service.Reload(context.Background())

			status := service.GetStatus()
			assert.Equal(t, false, status["reload_running"])
			assert.Equal(t, dataset.Status{Source: "csv:ventas.csv"}, status["dataset"])
			assert.False(t, status["last_reload_completed_at"].(time.Time).IsZero())

			if tt.loadErr != nil {
				assert.ErrorIs(t, err, tt.loadErr)
				assert.Equal(t, tt.loadErr.Error(), status["last_reload_error"])
				return
			}
			require.NoError(t, err)
			assert.NotContains(t, status, "last_reload_error")
		})
	}
}

func TestDatasetReloadService_ReloadWhileRunning(t *testing.T) {
	service, loader := newReloadService(t, false)

	started := make(chan struct{})
	release := make(chan struct{})
	loader.EXPECT().Load(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	})

	done := make(chan error)
	go func() { done <- service.Reload(context.Background()) }()
	<-started

	assert.ErrorIs(t, service.Reload(context.Background()), ErrReloadRunning)
	assert.False(t, service.TriggerManualSync())

	close(release)
	require.NoError(t, <-done)
}

func TestDatasetReloadService_TriggerManualSync(t *testing.T) {
	service, loader := newReloadService(t, false)

	done := make(chan struct{})
	loader.EXPECT().Load(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		close(done)
		return nil
	})

	assert.True(t, service.TriggerManualSync())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("recarga manual não foi executada")
	}
}

func TestDatasetReloadService_StartDisabled(t *testing.T) {
	service, _ := newReloadService(t, false)

	require.NoError(t, service.Start(context.Background()))
	assert.Equal(t, 0, len(service.scheduler.Jobs()))
}

func TestDatasetReloadService_StartEnabled(t *testing.T) {
	service, _ := newReloadService(t, true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, service.Start(ctx))
	assert.Equal(t, 1, len(service.scheduler.Jobs()))
}

func TestDatasetReloadService_StartInvalidCron(t *testing.T) {
	service, _ := newReloadService(t, true)
	service.config.CronSchedule = "toda hora"

	assert.Error(t, service.Start(context.Background()))
}
