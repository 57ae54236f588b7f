package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	Setup("debug", &buf)

	ctx := ContextWithRequestID(context.Background(), "req-1")
	ctx = ContextWithIdentity(ctx, "acme", "jane@acme.test")

	WithContext(ctx).WithField("op", "login").Info("hello")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "acme", line["tenant"])
	assert.Equal(t, "jane@acme.test", line["user"])
	assert.Equal(t, "login", line["op"])
	assert.Equal(t, "req-1", RequestID(ctx))
}

func TestWithContextAnonymous(t *testing.T) {
	var buf bytes.Buffer
	Setup("info", &buf)

	WithContext(context.Background()).Info("anon")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "anonymous", line["user"])
	assert.NotContains(t, line, "tenant")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abc", ShortID("abc"))
	assert.Equal(t, "abcdefgh...", ShortID("abcdefghijklmnop"))
}
