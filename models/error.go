package models

// ErrorMessageResponse is the body written by config.ErrorStatus for every
// failed API request
type ErrorMessageResponse struct {
	Response MessageError `json:"response"`
}

// MessageError holds a caller facing message and the underlying error text,
// which is empty when there was no error value
type MessageError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
