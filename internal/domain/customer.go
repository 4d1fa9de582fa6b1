package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Gender    Gender
	BirthDate time.Time
	Address   string
	Phone     string
	Zipcode   string
}
