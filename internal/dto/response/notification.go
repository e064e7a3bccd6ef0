package response

import "time"

type SMSReceiptResponse struct {
	PhoneNumber string    `json:"phoneNumber"`
	Message     string    `json:"message"`
	SentAt      time.Time `json:"sentAt"`
}

type EmailReceiptResponse struct {
	Email   string    `json:"email"`
	Subject string    `json:"subject"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sentAt"`
}
