package server_test

import (
	"testing"

	"size-sync/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_BodyLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"Configured", 1024, 1024},
		{"Zero", 0, server.DefaultBodyLimit},
		{"Negative", -5, server.DefaultBodyLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{BodyLimitBytes: tt.limit}
			assert.Equal(t, tt.want, c.BodyLimit())
		})
	}
}

func TestConfig_VerifiesWebhooks(t *testing.T) {
	assert.False(t, server.Config{}.VerifiesWebhooks())
	assert.True(t, server.Config{WebhookSecret: "shh"}.VerifiesWebhooks())
}
