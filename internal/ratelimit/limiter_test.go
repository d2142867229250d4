package ratelimit

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestKey(t *testing.T) {
	req := httptest.NewRequest("POST", "/v1/ai/text-to-diagram/generate", nil)
	req.RemoteAddr = "203.0.113.7:54321"

	assert.Equal(t, "ratelimit:203.0.113.7:/v1/ai/text-to-diagram/generate", RequestKey(req))
}

func TestRequestKey_NoPort(t *testing.T) {
	req := httptest.NewRequest("POST", "/v1/ai/diagram-to-code/generate", nil)
	req.RemoteAddr = "203.0.113.7"

	assert.Equal(t, "ratelimit:203.0.113.7:/v1/ai/diagram-to-code/generate", RequestKey(req))
}
