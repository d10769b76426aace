package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background(), "")
	require.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))

	ctx, id = WithCorrelationID(context.Background(), "req-123")
	assert.Equal(t, "req-123", id)
	assert.Equal(t, "req-123", GetCorrelationID(ctx))

	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	SetupTestLogger()

	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	defer logrus.SetOutput(os.Stderr)

	L.WithFields(Fields{
		"view":           "general",
		"dataset_rows":   7,
		"remote_addr":    "127.0.0.1",
		"correlation_id": "abc",
	}).Info("teste")

	out := buf.String()
	assert.Contains(t, out, "view=general")
	assert.Contains(t, out, "dataset_rows=7")
	assert.Contains(t, out, "correlation_id=abc")
	assert.NotContains(t, out, "remote_addr")
}

func TestWithFields_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	SetupTestLogger()

	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	defer logrus.SetOutput(os.Stderr)

	ForContext(context.WithValue(context.Background(), CorrelationIDKey, "xyz")).
		WithField("remote_addr", "127.0.0.1").
		Info("teste")

	out := buf.String()
	assert.Contains(t, out, "remote_addr=127.0.0.1")
	assert.Contains(t, out, "correlation_id=xyz")
}

func TestConfigure_InvalidLevel(t *testing.T) {
	Configure("barulhento", "production")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	assert.False(t, IsDevelopment())

	Configure("warn", "dev")
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	assert.True(t, IsDevelopment())
}
