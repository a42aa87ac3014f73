package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper() *viper.Viper {
	v := viper.New()
	SetConfigDefaults(v)
	v.AutomaticEnv()
	return v
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(newTestViper())

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "9090", cfg.GRPCPort)
	assert.Equal(t, "order.changed", cfg.KafkaOrderChangedTopic)
	assert.Equal(t, 24*time.Hour, cfg.IdempotencyTTL)
	assert.Equal(t, 2*time.Second, cfg.PublishTimeout)
	assert.Equal(t, "0 * * * * *", cfg.StatusReportSchedule)
	assert.Empty(t, cfg.KafkaHost)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadConfig_EnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "18080")
	t.Setenv("KAFKA_HOST", "kafka:9092")
	t.Setenv("IDEMPOTENCY_TTL", "90m")
	t.Setenv("DB_NAME", "orders_test")

	cfg, err := LoadConfig(newTestViper())

	require.NoError(t, err)
	assert.Equal(t, "18080", cfg.HTTPPort)
	assert.Equal(t, "kafka:9092", cfg.KafkaHost)
	assert.Equal(t, 90*time.Minute, cfg.IdempotencyTTL)
	assert.Contains(t, cfg.DSN(), "dbname=orders_test")
}

func TestLoadConfig_RejectsInvalidTTL(t *testing.T) {
	t.Setenv("IDEMPOTENCY_TTL", "soon")

	_, err := LoadConfig(newTestViper())

	assert.Error(t, err)
}

func TestLoadConfig_RejectsNonPositivePublishTimeout(t *testing.T) {
	t.Setenv("PUBLISH_TIMEOUT", "0s")

	_, err := LoadConfig(newTestViper())

	assert.ErrorContains(t, err, "PUBLISH_TIMEOUT")
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{
		DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "n", DBSslMode: "disable",
	}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", cfg.DSN())
}

func TestNewLogger_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("warn", "json", &buf)

	logger.Info("hidden")
	logger.Warn("shown", "order_id", 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "shown", record["msg"])
	assert.Equal(t, "WARN", record["level"])
}

func TestNewLogger_TextHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("debug", "text", &buf)

	logger.Debug("Transitioned from CREATED to SHIPPED")

	assert.Contains(t, buf.String(), "Transitioned from CREATED to SHIPPED")
}

func TestVersionCommand(t *testing.T) {
	root := NewRootCommand(viper.New())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "orderflow dev")
}

func TestRootCommand_LogLevelFlagBindsToConfig(t *testing.T) {
	v := viper.New()
	root := NewRootCommand(v)
	root.SetArgs([]string{"--log-level", "error", "version"})
	root.SetOut(&bytes.Buffer{})

	require.NoError(t, root.Execute())

	cfg, err := LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestStartHealthServer_PortInUse(t *testing.T) {
	taken, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer func() { _ = taken.Close() }()
	port := strconv.Itoa(taken.Addr().(*net.TCPAddr).Port)

	errCh := make(chan error, 1)
	server, err := startHealthServer(context.Background(), port, NewLogger("error", "text", io.Discard), errCh)

	require.ErrorContains(t, err, "grpc listen")
	assert.Nil(t, server)
}

func TestStartHealthServer_ServesUntilStopped(t *testing.T) {
	errCh := make(chan error, 1)
	server, err := startHealthServer(context.Background(), "0", NewLogger("error", "text", io.Discard), errCh)
	require.NoError(t, err)

	server.GracefulStop()

	select {
	case serveErr := <-errCh:
		t.Fatalf("unexpected serve error: %v", serveErr)
	case <-time.After(100 * time.Millisecond):
	}
}
