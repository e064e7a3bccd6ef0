package request

// TripSearchQuery comes from query parameters, not a JSON body. Date is
// accepted and echoed back; the demo catalog runs every day.
type TripSearchQuery struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
	Date string `json:"date" validate:"required"`
}
