package response

import (
	"time"

	"safari-njema/internal/data/entity"
)

type CustomerResponse struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	PhoneNumber string    `json:"phoneNumber"`
	IDNumber    string    `json:"idNumber"`
	Email       *string   `json:"email,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func CustomerToResponse(customer *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          customer.ID.String(),
		FullName:    customer.FullName,
		PhoneNumber: customer.PhoneNumber,
		IDNumber:    customer.IDNumber,
		Email:       customer.Email,
		CreatedAt:   customer.CreatedAt,
	}
}
