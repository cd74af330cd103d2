package request

type CreateBlockRequest struct {
	Date   string  `json:"date" binding:"required"`
	Reason *string `json:"reason,omitempty"`
}
