package request

type RegisterCustomerRequest struct {
	FullName    string `json:"fullName" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	IDNumber    string `json:"idNumber" validate:"required"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
}
