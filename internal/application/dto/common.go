package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusUpdateRequest body para PATCH .../status (contratos e faturas).
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
