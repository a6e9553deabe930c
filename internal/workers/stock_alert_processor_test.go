package workers_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sengdao/minipos-be/internal/core/domain"
	"github.com/sengdao/minipos-be/internal/workers"
	"github.com/sengdao/minipos-be/test/helpers"
	"github.com/sengdao/minipos-be/test/mocks"
)

func TestNewStockLevelCheckTask(t *testing.T) {
	task, err := workers.NewStockLevelCheckTask([]string{"8851234567890", "8859876543210"})
	require.NoError(t, err)

	assert.Equal(t, workers.TypeStockLevelCheck, task.Type())
	assert.Contains(t, string(task.Payload()), "8851234567890")
}

func TestStockAlertProcessor_ProcessStockLevelCheck(t *testing.T) {
	barcodes := []string{"8851234567890", "8859876543210"}

	tests := []struct {
		name      string
		payload   func(t *testing.T) *asynq.Task
		setupMock func(*mocks.MockProductCatalog)
		wantErr   bool
		skipRetry bool
	}{
		{
			name: "reports_products_below_minimum",
			payload: func(t *testing.T) *asynq.Task {
				task, err := workers.NewStockLevelCheckTask(barcodes)
				require.NoError(t, err)
				return task
			},
			setupMock: func(m *mocks.MockProductCatalog) {
				low := helpers.CreateTestProduct(func(p *domain.Product) {
					p.Quantity = 3
				})
				m.EXPECT().
					BelowMinimum(gomock.Any(), barcodes).
					Return([]*domain.Product{low}, nil)
			},
		},
		{
			name: "empty_barcode_list_is_a_noop",
			payload: func(t *testing.T) *asynq.Task {
				task, err := workers.NewStockLevelCheckTask(nil)
				require.NoError(t, err)
				return task
			},
			setupMock: func(m *mocks.MockProductCatalog) {},
		},
		{
			name: "catalog_failure_is_retryable",
			payload: func(t *testing.T) *asynq.Task {
				task, err := workers.NewStockLevelCheckTask(barcodes)
				require.NoError(t, err)
				return task
			},
			setupMock: func(m *mocks.MockProductCatalog) {
				m.EXPECT().
					BelowMinimum(gomock.Any(), barcodes).
					Return(nil, fmt.Errorf("connection reset"))
			},
			wantErr: true,
		},
		{
			name: "malformed_payload_skips_retry",
			payload: func(t *testing.T) *asynq.Task {
				return asynq.NewTask(workers.TypeStockLevelCheck, []byte("{not json"))
			},
			setupMock: func(m *mocks.MockProductCatalog) {},
			wantErr:   true,
			skipRetry: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			catalog := mocks.NewMockProductCatalog(ctrl)
			tt.setupMock(catalog)

			processor := workers.NewStockAlertProcessor(catalog, helpers.TestLogger())

			err := processor.ProcessStockLevelCheck(context.Background(), tt.payload(t))

			if tt.wantErr {
				require.Error(t, err)
				if tt.skipRetry {
					assert.ErrorIs(t, err, asynq.SkipRetry)
				}
				return
			}
			require.NoError(t, err)
		})
	}
}
