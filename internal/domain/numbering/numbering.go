// Package numbering genera identificadores legibles y consecutivos (prefijo + contador con ceros).
package numbering

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultWidth ancho mínimo del contador (PO0001).
const DefaultWidth = 4

// Seed devuelve el primer identificador de una serie: prefijo + 1 con ceros a la izquierda.
func Seed(prefix string, width int) string {
	return Format(prefix, 1, width)
}

// Format arma prefijo + n con relleno de ceros hasta width (width es un mínimo).
func Format(prefix string, n uint64, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	return fmt.Sprintf("%s%0*d", prefix, width, n)
}

// Next calcula el identificador siguiente a last.
//
// Toma la racha final de dígitos de last, la incrementa y la formatea con prefix.
// Si last está vacío (no hay registros previos) devuelve Seed(prefix, width).
// Si last no termina en dígitos devuelve last + "_1".
func Next(last, prefix string, width int) string {
	last = strings.TrimSpace(last)
	if last == "" {
		return Seed(prefix, width)
	}
	digits := trailingDigits(last)
	if digits == "" {
		return last + "_1"
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		// racha de dígitos fuera de rango uint64
		return last + "_1"
	}
	return Format(prefix, n+1, width)
}

func trailingDigits(s string) string {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	return s[i:]
}
