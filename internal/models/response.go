package models

type ErrorResponse struct {
	Error  string       `json:"error"`
	Detail string       `json:"detail"`
	Fields []FieldError `json:"fields,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HealthStatusOK is the only status /health reports.
const HealthStatusOK = "ok"

type HealthResponse struct {
	Status string `json:"status"`
}
