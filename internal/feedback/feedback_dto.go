package feedback

type CreateFeedbackRequest struct {
	EmployeeID string `form:"employee_id" binding:"required"`
	Content    string `form:"content" binding:"required"`
}

type FeedbackResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}
