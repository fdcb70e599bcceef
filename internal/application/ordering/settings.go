package ordering

import (
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/numbering"
)

// Settings reglas configurables de numeración y confirmación.
type Settings struct {
	Prefixes           map[string]string // tipo -> prefijo; los faltantes usan entity.DefaultPrefix
	NumberWidth        int
	MinLines           int
	AllowNegativeStock bool
}

// DefaultSettings prefijos por defecto, ancho 4 y mínimo una línea.
func DefaultSettings() Settings {
	return Settings{NumberWidth: numbering.DefaultWidth, MinLines: 1}
}

// PrefixFor devuelve el prefijo de numeración del tipo.
func (s Settings) PrefixFor(kind string) string {
	if p, ok := s.Prefixes[kind]; ok && p != "" {
		return p
	}
	return entity.DefaultPrefix(kind)
}

func (s Settings) width() int {
	if s.NumberWidth <= 0 {
		return numbering.DefaultWidth
	}
	return s.NumberWidth
}
