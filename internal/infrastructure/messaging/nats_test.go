package messaging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminhze/cribhunter/internal/infrastructure/logging"
)

func TestConnect_EmptyURLDisables(t *testing.T) {
	p, err := Connect("", logging.Discard())
	require.NoError(t, err)

	assert.False(t, p.Enabled())
	assert.NoError(t, p.Publish(context.Background(), SubjectPropertyCreated, map[string]string{"id": "1"}))
	p.Close()
}

func TestConnect_UnreachableServer(t *testing.T) {
	_, err := Connect("nats://127.0.0.1:1", logging.Discard())
	assert.Error(t, err)
}
