package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PaymentState string

const (
	PaymentStatePending   PaymentState = "pending"
	PaymentStateCompleted PaymentState = "completed"
	PaymentStateFailed    PaymentState = "failed"
)

type Booking struct {
	Base
	Reference     string        `db:"reference"`
	TripID        string        `db:"trip_id"`
	CustomerID    uuid.UUID     `db:"customer_id"`
	SeatNumbers   []int         `db:"seat_numbers"`
	TotalAmount   float64       `db:"total_amount"`
	Status        BookingStatus `db:"status"`
	PaymentStatus PaymentState  `db:"payment_status"`
	PaymentMethod string        `db:"payment_method"`
	PaymentID     *uuid.UUID    `db:"payment_id"`
	ConfirmedAt   *time.Time    `db:"confirmed_at"`
}
