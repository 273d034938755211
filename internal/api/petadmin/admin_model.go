package petadmin

// SubmitRequest is a new record payload. Age travels as a string so the
// 1-99 range rule applies to the raw input, not a parsed integer.
type SubmitRequest struct {
	Type        string `json:"Type"`
	Name        string `json:"Name"`
	Breed       string `json:"Breed"`
	Age         string `json:"Age"`
	Location    string `json:"Location"`
	PhoneNumber string `json:"PhoneNumber"`
	Email       string `json:"Email"`
}

// UpdateRequest is an update payload. Update IDs are bare 6-digit numbers.
type UpdateRequest struct {
	PetID       string `json:"PetID"`
	Type        string `json:"Type"`
	Name        string `json:"Name"`
	Breed       string `json:"Breed"`
	Age         string `json:"Age"`
	Location    string `json:"Location"`
	PhoneNumber string `json:"PhoneNumber"`
	Email       string `json:"Email"`
}

// ConfirmationResponse acknowledges a submission or update. Nothing is
// persisted; the reference exists so clients can correlate acknowledgments.
type ConfirmationResponse struct {
	Message   string `json:"Message"`
	Reference string `json:"Reference,omitempty"`
}
