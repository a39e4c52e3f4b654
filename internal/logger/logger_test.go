package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_AddsSessionFields(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	t.Cleanup(func() { log = nil })

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithSessionID(ctx, "sid-1")
	ctx = WithUserID(ctx, "u-1")
	CtxWithError(ctx, "fetch failed", errors.New("boom"), "slice", "jobs")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "fetch failed", line["msg"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "sid-1", line["session_id"])
	assert.Equal(t, "u-1", line["user_id"])
	assert.Equal(t, "boom", line["error"])
	assert.Equal(t, "jobs", line["slice"])
}

func TestAPILog_FailureIsWarning(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	t.Cleanup(func() { log = nil })

	APILog("GET", "/jobs", 0, time.Millisecond, errors.New("timeout"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "/jobs", line["path"])
}

