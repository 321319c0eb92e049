package dto

import "strings"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de confirmación (ej. borrado exitoso).
type MessageResponse struct {
	Message string `json:"message"`
}

// field par nombre/valor para validar requeridos en orden.
type field struct {
	name  string
	value string
}

// firstMissing devuelve el nombre del primer campo vacío tras recortar
// espacios, o "" si todos están presentes.
func firstMissing(fields []field) string {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return f.name
		}
	}
	return ""
}
