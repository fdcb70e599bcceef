// Package nit valida el dígito de verificación del NIT colombiano (módulo 11).
package nit

import (
	"fmt"
	"strings"
	"unicode"
)

// pesos aplicados a los 9 dígitos base, de izquierda a derecha.
var weights = [9]int{41, 37, 29, 23, 19, 17, 13, 7, 3}

// CheckDigit calcula el dígito de verificación de los 9 primeros dígitos.
func CheckDigit(taxID string) (byte, error) {
	digits := extractDigits(taxID)
	if len(digits) < 9 {
		return 0, fmt.Errorf("nit: se requieren 9 dígitos, se encontraron %d", len(digits))
	}
	var sum int
	for i, d := range digits[:9] {
		sum += int(d-'0') * weights[i]
	}
	r := sum % 11
	if r == 0 || r == 1 {
		return byte('0' + r), nil
	}
	return byte('0' + (11 - r)), nil
}

// Validate revisa el dígito de verificación cuando taxID viene con guion ("900123456-8",
// "900.123.456-8"). Sin guion el documento se acepta tal cual (cédulas, documentos extranjeros).
func Validate(taxID string) error {
	if !strings.Contains(taxID, "-") {
		return nil
	}
	digits := extractDigits(taxID)
	if len(digits) != 10 {
		return fmt.Errorf("nit: con dígito de verificación debe tener 10 dígitos, tiene %d", len(digits))
	}
	expected, err := CheckDigit(taxID)
	if err != nil {
		return err
	}
	if digits[9] != expected {
		return fmt.Errorf("nit: dígito de verificación inválido: esperado %c, recibido %c", expected, digits[9])
	}
	return nil
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
