package sitters

import "time"

// Gender define los valores aceptados para el género de un sitter.
// @Enum male, female, other
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Sitter representa a un cuidador de mascotas.
type Sitter struct {
	ID string

	FirstName string
	LastName  string
	Gender    Gender
	Email     string
	Phone     string
	Address   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
