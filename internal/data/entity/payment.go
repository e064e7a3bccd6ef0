package entity

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	BaseSimple
	BookingID     uuid.UUID    `db:"booking_id"`
	Amount        float64      `db:"amount"`
	PhoneNumber   string       `db:"phone_number"`
	Method        string       `db:"method"`
	Status        PaymentState `db:"status"`
	TransactionID string       `db:"transaction_id"`
	CompletedAt   *time.Time   `db:"completed_at"`
}
