package entity

type Customer struct {
	BaseSimple
	FullName    string  `db:"full_name"`
	PhoneNumber string  `db:"phone_number"`
	IDNumber    string  `db:"id_number"`
	Email       *string `db:"email"`
}
