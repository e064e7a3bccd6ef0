package request

type InitiatePaymentRequest struct {
	BookingID     string  `json:"bookingId" validate:"required,uuid4"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PhoneNumber   string  `json:"phoneNumber" validate:"required"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
}
