package activity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AgentPisite999/agentpi-backend/internal/common/logger"
	"github.com/AgentPisite999/agentpi-backend/internal/records"
	"github.com/AgentPisite999/agentpi-backend/internal/store"
)

func TestLog(t *testing.T) {
	tab := store.NewMemoryStore()
	svc := NewService(tab, logger.Nop())

	assert.NoError(t, svc.Log(context.Background(), "Asha", "asha@example.com"))

	rows, _ := tab.Scan(context.Background(), records.TableUserLog)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Asha", rows[0][1])
	assert.Equal(t, "asha@example.com", rows[0][2])
	assert.NotEmpty(t, rows[0][0])
}
