package boardmeeting

type CreateMeetingRequest struct {
	Title   string `form:"title" binding:"required"`
	Details string `form:"details" binding:"required"`
	Date    string `form:"date" binding:"required"`
}

type RecordMinutesRequest struct {
	Minutes string `form:"minutes" binding:"required"`
}

type MeetingResponse struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Details string  `json:"details"`
	Date    string  `json:"date"`
	Minutes *string `json:"minutes,omitempty"`
}
