package owners

import "time"

// Owner representa a un dueño de mascotas registrado en el sistema.
// Dogs y bookings lo referencian por ID.
type Owner struct {
	ID string

	Name    string
	Email   string
	Phone   string
	Address string

	CreatedAt time.Time
	UpdatedAt time.Time
}
