package request

type ReserveSeatsRequest struct {
	TripID       string                   `json:"tripId" validate:"required"`
	SeatNumbers  []int                    `json:"seatNumbers" validate:"required,min=1,dive,min=1"`
	CustomerInfo *RegisterCustomerRequest `json:"customerInfo,omitempty"`
}

type ReleaseSeatsRequest struct {
	TripID      string `json:"tripId" validate:"required"`
	SeatNumbers []int  `json:"seatNumbers" validate:"required,min=1,dive,min=1"`
}
