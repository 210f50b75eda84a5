package jobs_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"warehouse/internal/adapters/out/memory"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/jobs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWarehouse(t *testing.T) *services.WarehouseService {
	t.Helper()

	store := memory.NewStore()
	svc := services.NewWarehouseService(memory.NewProductRepository(store), memory.NewOrderRepository(store))

	laptop, err := svc.CreateProduct(t.Context(), "Laptop", 10, decimal.RequireFromString("999.99"))
	require.NoError(t, err)
	_, err = svc.CreateProduct(t.Context(), "Cable", 0, decimal.RequireFromString("4.50"))
	require.NoError(t, err)

	first, err := svc.CreateOrder(t.Context(), []services.OrderLine{{ProductID: laptop.ID(), Quantity: 1}})
	require.NoError(t, err)
	_, err = svc.CreateOrder(t.Context(), []services.OrderLine{{ProductID: laptop.ID(), Quantity: 1}})
	require.NoError(t, err)
	_, err = svc.ConfirmOrder(t.Context(), first.ID())
	require.NoError(t, err)

	return svc
}

// lastRecord decodes the last JSON log line.
func lastRecord(t *testing.T, logs *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &record))
	return record
}

func TestStockReportJob_Report(t *testing.T) {
	svc := newWarehouse(t)
	logs := new(bytes.Buffer)
	logger := slog.New(slog.NewJSONHandler(logs, nil))

	job := jobs.NewStockReportJob(queries.NewListProductsQueryHandler(svc), "0 */5 * * * *", logger)
	require.NoError(t, job.Report(t.Context()))

	record := lastRecord(t, logs)
	assert.Equal(t, "Stock report", record["msg"])
	assert.Equal(t, "stock_report_job", record["component"])
	assert.InDelta(t, 2, record["products"], 0)
	assert.InDelta(t, 8, record["units"], 0)
	assert.InDelta(t, 1, record["out_of_stock_count"], 0)
	assert.Equal(t, []any{"Cable"}, record["out_of_stock"])
}

func TestOrderBacklogJob_Report(t *testing.T) {
	svc := newWarehouse(t)
	logs := new(bytes.Buffer)
	logger := slog.New(slog.NewJSONHandler(logs, nil))

	job := jobs.NewOrderBacklogJob(queries.NewListOrdersQueryHandler(svc), "0 * * * * *", logger)
	require.NoError(t, job.Report(t.Context()))

	record := lastRecord(t, logs)
	assert.Equal(t, "Order backlog", record["msg"])
	assert.InDelta(t, 1, record["pending"], 0)
	assert.InDelta(t, 1, record["confirmed"], 0)
}

func TestJobManager_StartAndStop(t *testing.T) {
	svc := newWarehouse(t)
	logs := new(bytes.Buffer)
	logger := slog.New(slog.NewJSONHandler(logs, nil))

	jm := jobs.NewJobManager(
		queries.NewListProductsQueryHandler(svc),
		queries.NewListOrdersQueryHandler(svc),
		jobs.Schedules{StockReport: "0 0 * * * *", OrderBacklog: "0 0 * * * *"},
		logger,
	)

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.Contains(t, logs.String(), "Stock report job started")
	assert.Contains(t, logs.String(), "Order backlog job stopped")
}

func TestJobManager_InvalidSchedule(t *testing.T) {
	svc := newWarehouse(t)
	logs := new(bytes.Buffer)
	logger := slog.New(slog.NewJSONHandler(logs, nil))

	jm := jobs.NewJobManager(
		queries.NewListProductsQueryHandler(svc),
		queries.NewListOrdersQueryHandler(svc),
		jobs.Schedules{StockReport: "0 0 * * * *", OrderBacklog: "every now and then"},
		logger,
	)

	err := jm.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start order backlog job")
	assert.Contains(t, logs.String(), "Stock report job stopped")
}
