package payroll

import "context"

// DefaultHourlyRate applies when no compensation table is wired in.
const DefaultHourlyRate = 20.0

// RateSource resolves the hourly rate for an employee. The default
// implementation pays a flat rate; a real compensation table can be
// plugged in without touching the service.
type RateSource interface {
	RateFor(ctx context.Context, employeeID string) (float64, error)
}

type FixedRateSource struct {
	Rate float64
}

func NewFixedRateSource(rate float64) *FixedRateSource {
	if rate <= 0 {
		rate = DefaultHourlyRate
	}
	return &FixedRateSource{Rate: rate}
}

func (s *FixedRateSource) RateFor(ctx context.Context, employeeID string) (float64, error) {
	return s.Rate, nil
}
