package entity

import "time"

// SeatState transitions only along available→reserved→booked, plus
// reserved→available on release or hold expiry. A booked seat never goes
// back, cancelling tickets is handled at the counter, not in this system.
type SeatState string

const (
	SeatAvailable SeatState = "available"
	SeatReserved  SeatState = "reserved"
	SeatBooked    SeatState = "booked"
)

type SeatRecord struct {
	TripID        string     `db:"trip_id"`
	SeatNumber    int        `db:"seat_number"`
	State         SeatState  `db:"state"`
	ReservedUntil *time.Time `db:"reserved_until"`
}
