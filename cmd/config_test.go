package cmd_test

import (
	"io"
	"log/slog"
	"testing"

	"warehouse/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := cmd.LoadConfig(envOf(map[string]string{"STORAGE_DRIVER": "memory"}))
	require.NoError(t, err)

	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, cmd.StorageMemory, config.StorageDriver)
	assert.Equal(t, "5432", config.DBPort)
	assert.Equal(t, "disable", config.DBSslMode)
	assert.Equal(t, "order.changed", config.KafkaOrderChangedTopic)
	assert.Equal(t, "0 */5 * * * *", config.StockReportSchedule)
	assert.Empty(t, config.KafkaBrokers())
}

func TestLoadConfig_Postgres(t *testing.T) {
	config, err := cmd.LoadConfig(envOf(map[string]string{
		"HTTP_PORT":   "9090",
		"DB_HOST":     "db",
		"DB_USER":     "warehouse",
		"DB_PASSWORD": "secret",
		"DB_NAME":     "warehouse",
		"KAFKA_HOST":  "kafka-1:9092, kafka-2:9092",
	}))
	require.NoError(t, err)

	assert.Equal(t, cmd.StoragePostgres, config.StorageDriver)
	assert.Equal(t, "9090", config.HTTPPort)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, config.KafkaBrokers())
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := cmd.LoadConfig(envOf(map[string]string{}))
	require.Error(t, err, "postgres needs connection settings")

	_, err = cmd.LoadConfig(envOf(map[string]string{"STORAGE_DRIVER": "sqlite"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}

func TestCompositionRoot_Memory(t *testing.T) {
	config, err := cmd.LoadConfig(envOf(map[string]string{"STORAGE_DRIVER": "MEMORY"}))
	require.NoError(t, err)

	app, err := cmd.NewCompositionRoot(config, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, app.Close()) })

	assert.NotNil(t, app.CreateHTTPServer())
	assert.NotNil(t, app.CreateJobManager())
}
