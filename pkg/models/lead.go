package models

// Lead statuses
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusConverted = "converted"
)

// LeadCreateRequest is the payload for capturing a new lead
type LeadCreateRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	Source    string `json:"source" validate:"required"`
}

// LeadResponse represents a single lead in API responses
type LeadResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	Source    string `json:"source"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// LeadListRequest represents list filters for leads
type LeadListRequest struct {
	Source string `query:"source"`
	Status string `query:"status" validate:"omitempty,oneof=new contacted converted"`
	Limit  int    `query:"limit" validate:"min=0,max=1000"`
}

// LeadStatusUpdateRequest updates a lead's lifecycle status
type LeadStatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted converted"`
}
