package patch

import "encoding/json"

// Field distingue "campo ausente" de "campo presente" en un body de update parcial.
// Un struct con punteros no alcanza: no diferencia "enviaron null" de "no enviaron nada".
// Set solo queda en true si la key vino en el JSON; null cuenta como presente con zero value.
type Field[T any] struct {
	Set   bool
	Value T
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if string(b) == "null" {
		var zero T
		f.Value = zero
		return nil
	}
	return json.Unmarshal(b, &f.Value)
}

// Or devuelve Value si el campo vino en el patch, o current si no.
func (f Field[T]) Or(current T) T {
	if f.Set {
		return f.Value
	}
	return current
}
