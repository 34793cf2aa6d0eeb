package dogs

import "time"

// Dog representa un perro registrado. OwnerID referencia a un owner existente;
// la referencia se valida en cada escritura (el storage no tiene FKs propias).
type Dog struct {
	ID      string
	OwnerID string

	Name  string
	Age   int
	Breed string

	CreatedAt time.Time
	UpdatedAt time.Time
}
