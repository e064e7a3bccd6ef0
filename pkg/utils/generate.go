package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// GenerateBookingReference creates the short code printed on the ticket.
// Format: SN followed by 6 zero-padded digits, e.g. SN004217.
func GenerateBookingReference() string {
	return fmt.Sprintf("SN%06d", rand.Intn(1000000))
}

// GenerateTransactionID creates a gateway-style transaction id.
// Format: TXN followed by 9 uppercase hex characters.
func GenerateTransactionID() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "TXN" + strings.ToUpper(raw[:9])
}
