package models

// CreateStatusRequest adds a status to a tenant's catalog.
type CreateStatusRequest struct {
	TenantID    string
	UserID      string
	StatusCode  string      `json:"status_code"`
	DisplayName string      `json:"display_name"`
	ActionCode  string      `json:"action_code,omitempty"`
	OutcomeType OutcomeType `json:"outcome_type"`
	IsTerminal  bool        `json:"is_terminal"`
	SortOrder   int         `json:"sort_order"`
}

// UpdateStatusCatalogRequest edits a catalog entry. Nil fields are left
// unchanged; status_code itself is immutable.
type UpdateStatusCatalogRequest struct {
	TenantID    string
	UserID      string
	StatusCode  string
	DisplayName *string `json:"display_name,omitempty"`
	ActionCode  *string `json:"action_code,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
}

// CreateTenantRequest provisions a tenant with its owner user and the
// default status catalog and capability grants.
type CreateTenantRequest struct {
	Name       string `json:"name"`
	OwnerEmail string `json:"owner_email"`
	OwnerName  string `json:"owner_name"`
}

// CreateUserRequest adds a user to the tenant's identity store.
type CreateUserRequest struct {
	TenantID string
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}
