package payroll

import (
	"context"

	"hr-ops/internal/employee"
)

// HistorySource exposes an employee's payroll runs to the employee
// view.
type HistorySource struct {
	service Service
}

func NewHistorySource(service Service) *HistorySource {
	return &HistorySource{service: service}
}

func (h *HistorySource) HistoryFor(ctx context.Context, employeeID string) ([]employee.PayrollRecord, error) {
	ps, err := h.service.GetAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	records := make([]employee.PayrollRecord, len(ps))
	for i, p := range ps {
		records[i] = employee.PayrollRecord{
			ID:            p.ID,
			HoursWorked:   p.HoursWorked,
			PaymentAmount: p.PaymentAmount,
			ProcessedAt:   p.ProcessedAt,
		}
	}
	return records, nil
}
