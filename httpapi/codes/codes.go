package codes

// Success200 OK
// swagger:model
type Success200 struct {
	// Status text
	Status string `json:"status" example:"ok"`
}

// Valid200 Signature matches
// swagger:model
type Valid200 struct {
	// Verification status
	Status string `json:"status" example:"valid"`
}

// Invalid400 Signature does not match
// swagger:model
type Invalid400 struct {
	// Verification status
	Status string `json:"status" example:"invalid"`
	// Error text
	Error string `json:"error" example:"Invalid signature"`
}

// Error400 Bad Request
// swagger:model
type Error400 struct {
	// Error text
	Error string `json:"error" example:"missing files: private_key"`
}

// Error405 Method Not Allowed
// swagger:model
type Error405 struct {
	// Error text
	Error string `json:"error" example:"method not allowed"`
}

// Error413 Request Entity Too Large
// swagger:model
type Error413 struct {
	// Error text
	Error string `json:"error" example:"upload exceeds 10485760 bytes"`
}

// Error500 Internal Server Error
// swagger:model
type Error500 struct {
	// Error text
	Error string `json:"error" example:"Internal Server Error"`
}

// Error503 Service Unavailable
// swagger:model
type Error503 struct {
	// Error text
	Error string `json:"error" example:"key generation cancelled"`
}
