package dto

// Response is the common success envelope. Data is omitted for operations
// that only acknowledge (register, deletes).
type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
