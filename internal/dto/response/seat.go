package response

import (
	"time"

	"safari-njema/internal/data/entity"
)

type SeatRecordResponse struct {
	SeatNumber    int              `json:"seatNumber"`
	Status        entity.SeatState `json:"status"`
	ReservedUntil *time.Time       `json:"reservedUntil,omitempty"`
}

// ReservationResponse is the data payload of a successful seat hold; the
// expiry additionally rides at the top level of the envelope.
type ReservationResponse struct {
	HoldID        string    `json:"holdId"`
	TripID        string    `json:"tripId"`
	SeatNumbers   []int     `json:"seatNumbers"`
	ReservedUntil time.Time `json:"reservedUntil"`
}

func SeatRecordToResponse(record entity.SeatRecord) SeatRecordResponse {
	return SeatRecordResponse{
		SeatNumber:    record.SeatNumber,
		Status:        record.State,
		ReservedUntil: record.ReservedUntil,
	}
}
