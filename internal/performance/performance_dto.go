package performance

type CreatePerformanceRequest struct {
	EmployeeID string             `form:"employee_id" binding:"required"`
	Ratings    map[string]float64 `form:"-"`
}

type PerformanceResponse struct {
	ID         string             `json:"id"`
	EmployeeID string             `json:"employee_id"`
	Ratings    map[string]float64 `json:"ratings,omitempty"`
	Feedback   []string           `json:"feedback,omitempty"`
	CreatedAt  string             `json:"created_at"`
}
