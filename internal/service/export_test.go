package service

import (
	"time"

	"github.com/MKhiriev/go-accounts/internal/config"
)

const FallbackDummyHash = fallbackDummyHash

// NewTokenServiceWithClock exposes the clock-injecting constructor to the
// external test package.
func NewTokenServiceWithClock(cfg config.App, now func() time.Time) (TokenService, error) {
	s, err := newTokenService(cfg, now)
	if err != nil {
		return nil, err
	}
	return s, nil
}
