// Package activity appends visitor entries to the user_log table.
package activity

import (
	"context"
	"time"

	apperrors "github.com/AgentPisite999/agentpi-backend/internal/common/errors"
	"github.com/AgentPisite999/agentpi-backend/internal/common/logger"
	"github.com/AgentPisite999/agentpi-backend/internal/records"
	"github.com/AgentPisite999/agentpi-backend/internal/store"
)

type Service struct {
	store  store.TabularStore
	logger logger.Logger
}

func NewService(s store.TabularStore, log logger.Logger) *Service {
	return &Service{
		store:  s,
		logger: log.WithFields(map[string]interface{}{"service": "activity"}),
	}
}

// Log records one visitor entry. Callers skip the call entirely when name or
// email is missing.
func (s *Service) Log(ctx context.Context, name, email string) error {
	row := records.UserLogRow(time.Now(), name, email)
	if err := s.store.Append(ctx, records.TableUserLog, row); err != nil {
		return apperrors.NewStoreAppendFailedError(records.TableUserLog, err)
	}
	return nil
}
