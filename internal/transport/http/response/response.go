package response

import "aquarium-tank-api/internal/domain"

// Resp is the envelope every endpoint answers with.
type Resp struct {
	Success bool               `json:"success"`
	Data    any                `json:"data,omitempty"`
	Message string             `json:"message,omitempty"`
	Errors  []domain.Violation `json:"errors,omitempty"`
}

func OK(data any) Resp { return Resp{Success: true, Data: data} }

// OKMsg is OK with a human-readable note such as "Tank created successfully".
func OKMsg(data any, msg string) Resp { return Resp{Success: true, Data: data, Message: msg} }

func Error(msg string, errs ...domain.Violation) Resp {
	return Resp{Success: false, Message: msg, Errors: errs}
}
