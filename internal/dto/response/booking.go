package response

import (
	"time"

	"safari-njema/internal/data/entity"
)

type BookingResponse struct {
	ID               string               `json:"id"`
	BookingReference string               `json:"bookingReference"`
	TripID           string               `json:"tripId"`
	CustomerID       string               `json:"customerId"`
	SeatNumbers      []int                `json:"seatNumbers"`
	TotalAmount      float64              `json:"totalAmount"`
	Status           entity.BookingStatus `json:"status"`
	PaymentStatus    entity.PaymentState  `json:"paymentStatus"`
	PaymentMethod    string               `json:"paymentMethod"`
	PaymentID        *string              `json:"paymentId,omitempty"`
	ConfirmedAt      *time.Time           `json:"confirmedAt,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
}

// BookingDetailResponse joins the booking with its customer and trip.
type BookingDetailResponse struct {
	BookingResponse
	Customer *CustomerResponse `json:"customer,omitempty"`
	Trip     *TripResponse     `json:"trip,omitempty"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:               booking.ID.String(),
		BookingReference: booking.Reference,
		TripID:           booking.TripID,
		CustomerID:       booking.CustomerID.String(),
		SeatNumbers:      booking.SeatNumbers,
		TotalAmount:      booking.TotalAmount,
		Status:           booking.Status,
		PaymentStatus:    booking.PaymentStatus,
		PaymentMethod:    booking.PaymentMethod,
		ConfirmedAt:      booking.ConfirmedAt,
		CreatedAt:        booking.CreatedAt,
	}
	if booking.PaymentID != nil {
		paymentID := booking.PaymentID.String()
		resp.PaymentID = &paymentID
	}
	return resp
}
