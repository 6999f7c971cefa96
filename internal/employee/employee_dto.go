package employee

type CreateEmployeeRequest struct {
	Name string `form:"name" binding:"required"`
}

type LogTimeRequest struct {
	StartTime string `form:"start_time" binding:"required"`
	EndTime   string `form:"end_time" binding:"required"`
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	EmployeeNumber   string  `json:"employee_number"`
	HoursWorked      float64 `json:"hours_worked"`
	Benefits         string  `json:"benefits,omitempty"`
	EquityAllocation float64 `json:"equity_allocation"`
}

// PayrollRecord is one processed payroll run shown on the employee
// page.
type PayrollRecord struct {
	ID            string  `json:"id"`
	HoursWorked   float64 `json:"hours_worked"`
	PaymentAmount float64 `json:"payment_amount"`
	ProcessedAt   string  `json:"processed_at"`
}

// ViewResponse is the employee page payload: the record itself plus
// its payroll history.
type ViewResponse struct {
	EmployeeResponse
	PayrollHistory []PayrollRecord `json:"payroll_history,omitempty"`
}
