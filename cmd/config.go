package cmd

import (
	"fmt"
	"strings"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort               string
	StorageDriver          string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	StockReportSchedule    string
	OrderBacklogSchedule   string
}

// LoadConfig reads the configuration through getenv and fills in defaults for
// optional keys.
func LoadConfig(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:               valueOr(getenv("HTTP_PORT"), "8080"),
		StorageDriver:          valueOr(strings.ToLower(getenv("STORAGE_DRIVER")), StoragePostgres),
		DBHost:                 getenv("DB_HOST"),
		DBPort:                 valueOr(getenv("DB_PORT"), "5432"),
		DBUser:                 getenv("DB_USER"),
		DBPassword:             getenv("DB_PASSWORD"),
		DBName:                 getenv("DB_NAME"),
		DBSslMode:              valueOr(getenv("DB_SSLMODE"), "disable"),
		KafkaHost:              getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: valueOr(getenv("KAFKA_ORDER_CHANGED_TOPIC"), "order.changed"),
		StockReportSchedule:    valueOr(getenv("STOCK_REPORT_SCHEDULE"), "0 */5 * * * *"),
		OrderBacklogSchedule:   valueOr(getenv("ORDER_BACKLOG_SCHEDULE"), "0 * * * * *"),
	}

	switch config.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if config.DBHost == "" || config.DBUser == "" || config.DBName == "" {
			return Config{}, fmt.Errorf("DB_HOST, DB_USER and DB_NAME are required for the %s storage driver", StoragePostgres)
		}
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q, expected %q or %q",
			config.StorageDriver, StorageMemory, StoragePostgres)
	}

	return config, nil
}

// KafkaBrokers splits KAFKA_HOST on commas. It is empty when Kafka is disabled.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, broker := range strings.Split(c.KafkaHost, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
