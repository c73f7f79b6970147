package cancel_booking

// CancelBookingRequest HTTP request model
// Тело опционально: отмена без причины допустима
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}
