package payroll

type ProcessPayrollRequest struct {
	EmployeeID  string `form:"employee_id" binding:"required"`
	HoursWorked string `form:"hours_worked" binding:"required"`
}

type PayrollResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	HoursWorked   float64 `json:"hours_worked"`
	PaymentAmount float64 `json:"payment_amount"`
	ProcessedAt   string  `json:"processed_at"`
}
