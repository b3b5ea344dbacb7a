package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/logdash/internal/client/client"
	"github.com/dmitrijs2005/logdash/internal/client/models"
	"github.com/dmitrijs2005/logdash/internal/logging"
)

// LogService reads the analytics the dashboard and home views show.
type LogService interface {
	Logs(ctx context.Context) ([]models.LogEntry, error)
	Info(ctx context.Context) (*models.ProjectInfo, error)
	Analytics(ctx context.Context) (*models.Analytics, error)
}

type logService struct {
	client client.Client
	logger logging.Logger
}

func NewLogService(c client.Client, l logging.Logger) LogService {
	if l == nil {
		l = logging.Discard()
	}
	return &logService{client: c, logger: l}
}

func (s *logService) Logs(ctx context.Context) ([]models.LogEntry, error) {
	out, err := s.client.Logs(ctx)
	if err != nil {
		s.logger.Warn(ctx, "fetch logs failed", "error", err)
		return nil, fmt.Errorf("fetch logs: %w", err)
	}
	return out, nil
}

func (s *logService) Info(ctx context.Context) (*models.ProjectInfo, error) {
	out, err := s.client.Info(ctx)
	if err != nil {
		s.logger.Warn(ctx, "fetch info failed", "error", err)
		return nil, fmt.Errorf("fetch info: %w", err)
	}
	return out, nil
}

// Analytics fetches the four dashboard aggregates. It fails as a whole if
// any of them fails.
func (s *logService) Analytics(ctx context.Context) (*models.Analytics, error) {
	var (
		a   models.Analytics
		err error
	)

	if a.Severity, err = s.client.LogsBySeverity(ctx); err != nil {
		return nil, s.analyticsErr(ctx, "severity", err)
	}
	if a.Methods, err = s.client.LogsByMethod(ctx); err != nil {
		return nil, s.analyticsErr(ctx, "methods", err)
	}
	if a.ResponseTimes, err = s.client.AvgResponseTimes(ctx); err != nil {
		return nil, s.analyticsErr(ctx, "response times", err)
	}
	if a.Users, err = s.client.LogsByUser(ctx); err != nil {
		return nil, s.analyticsErr(ctx, "users", err)
	}
	return &a, nil
}

func (s *logService) analyticsErr(ctx context.Context, part string, err error) error {
	s.logger.Warn(ctx, "fetch analytics failed", "part", part, "error", err)
	return fmt.Errorf("fetch %s: %w", part, err)
}
