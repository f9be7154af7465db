package dto

import "github.com/shopspring/decimal"

func init() {
	// Precios como número JSON (10.5) y no como string ("10.5").
	decimal.MarshalJSONWithoutQuotes = true
}

// Response sobre estándar de la API para respuestas exitosas.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
}

// OK envuelve data en una respuesta exitosa.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Fail construye el cuerpo de error (success siempre false).
func Fail(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Code: code, Message: message}
}
