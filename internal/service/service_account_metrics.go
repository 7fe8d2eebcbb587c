package service

import (
	"context"

	"github.com/MKhiriev/go-accounts/internal/metrics"
	"github.com/MKhiriev/go-accounts/models"
)

// AccountRecorder receives the outcome of registrations and logins.
// *metrics.Metrics satisfies it.
type AccountRecorder interface {
	RecordLoginAttempt(result string)
	RecordRegistration(result string)
}

// AccountMetricsService decorates an AccountService with outcome counters.
type AccountMetricsService struct {
	inner    AccountService
	recorder AccountRecorder
}

func NewAccountMetricsService(recorder AccountRecorder) AccountServiceWrapper {
	return &AccountMetricsService{recorder: recorder}
}

func (m *AccountMetricsService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	user, err := m.inner.Register(ctx, req)
	m.recorder.RecordRegistration(resultOf(err))
	return user, err
}

func (m *AccountMetricsService) Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	user, token, err := m.inner.Login(ctx, credentials)
	m.recorder.RecordLoginAttempt(resultOf(err))
	return user, token, err
}

func (m *AccountMetricsService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return m.inner.GetUser(ctx, id)
}

func (m *AccountMetricsService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.inner.ListUsers(ctx)
}

func (m *AccountMetricsService) UpdateProfile(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	return m.inner.UpdateProfile(ctx, id, update)
}

func (m *AccountMetricsService) SetActive(ctx context.Context, id int64, active bool) (models.User, error) {
	return m.inner.SetActive(ctx, id, active)
}

func (m *AccountMetricsService) Wrap(inner AccountService) AccountService {
	m.inner = inner
	return m
}

// resultOf maps err to a metrics result label.
func resultOf(err error) string {
	if err == nil {
		return metrics.ResultSuccess
	}

	switch KindOf(err) {
	case KindValidation:
		return metrics.ResultValidationError
	case KindConflict:
		return metrics.ResultConflict
	case KindAuth:
		return metrics.ResultInvalidCredentials
	default:
		return metrics.ResultError
	}
}
