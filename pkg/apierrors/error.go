package apierrors

import (
	"fmt"

	"taskforge/pkg/translator"
)

// JsonErr represents the JSON structure for apierrors.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

// Err represents the error with a code, a message and, for validation
// failures, per-field messages.
type Err struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	message := GetTransErrorMsg(msgKey, lang)
	return JsonErr{ErrDetails: Err{Code: code, Message: message}}
}

// CreateFieldErrors generates a JsonErr carrying translated per-field
// messages, keyed by field name.
func CreateFieldErrors(code int, msgKey string, fields map[string]string, lang string) JsonErr {
	translated := make(map[string]string, len(fields))
	for field, fieldKey := range fields {
		translated[field] = GetTransErrorMsg(fieldKey, lang)
	}
	return JsonErr{ErrDetails: Err{
		Code:    code,
		Message: GetTransErrorMsg(msgKey, lang),
		Fields:  translated,
	}}
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	return translator.Localize(msgKey, lang)
}
