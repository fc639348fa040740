package dto

// ContactData echoes the accepted submission back to the caller with the
// resolved labels and the transport message ID.
type ContactData struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Category  string `json:"category"`
	Urgency   string `json:"urgency"`
	MessageID string `json:"messageId"`
}

type ContactResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    ContactData `json:"data"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type NotFoundResponse struct {
	Success            bool     `json:"success"`
	Error              string   `json:"error"`
	AvailableEndpoints []string `json:"availableEndpoints"`
}

type HealthResponse struct {
	Status          string `json:"status"`
	Service         string `json:"service"`
	Version         string `json:"version"`
	Timestamp       string `json:"timestamp"`
	EmailConfigured bool   `json:"emailConfigured"`
}

type RootResponse struct {
	Message       string            `json:"message"`
	Description   string            `json:"description"`
	Endpoints     map[string]string `json:"endpoints"`
	Documentation string            `json:"documentation"`
}
