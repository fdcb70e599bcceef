package dto

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Numeric texto numérico recibido en JSON. Acepta tanto "150.00" como 150.00 y conserva
// el texto original para que lo validen los constructores de money.
type Numeric string

// UnmarshalJSON acepta un número o una cadena; null queda vacío.
func (n *Numeric) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*n = ""
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Numeric(s)
		return nil
	case (b[0] >= '0' && b[0] <= '9') || b[0] == '-':
		*n = Numeric(b)
		return nil
	}
	return errors.New("valor numérico inválido")
}

// String devuelve el texto tal como llegó.
func (n Numeric) String() string { return string(n) }

// Empty indica si no se envió valor.
func (n Numeric) Empty() bool { return len(bytes.TrimSpace([]byte(n))) == 0 }
