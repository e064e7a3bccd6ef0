package request

type CreateBookingRequest struct {
	TripID        string                   `json:"tripId" validate:"required"`
	SeatNumbers   []int                    `json:"seatNumbers" validate:"required,min=1,dive,min=1"`
	TotalAmount   float64                  `json:"totalAmount" validate:"required,gt=0"`
	CustomerID    string                   `json:"customerId,omitempty" validate:"omitempty,uuid4"`
	CustomerInfo  *RegisterCustomerRequest `json:"customerInfo,omitempty"`
	PaymentMethod string                   `json:"paymentMethod,omitempty"`
	// HoldID converts a prior seat reservation into this booking. Without
	// it only seats that are still available can be booked directly.
	HoldID string `json:"holdId,omitempty" validate:"omitempty,uuid4"`
}

type ConfirmBookingRequest struct {
	PaymentID string `json:"paymentId" validate:"required,uuid4"`
}
