package model

// AdminUser is a dashboard administrator, looked up by email. PasswordHash
// is computed by the client (SHA256 of password + secret); the server only
// ever compares it byte for byte.
type AdminUser struct {
	Name         string `json:"name" bson:"name"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"password_hash" bson:"password_hash"`
	Role         string `json:"role" bson:"role"`
	// Pointer so that documents written before the flag existed still read
	// as active, matching the declared default.
	IsActive *bool `json:"is_active" bson:"is_active"`
}

const (
	RoleOwner   = "owner"
	RoleManager = "manager"
)

func (a *AdminUser) ApplyDefaults() {
	if a.Role == "" {
		a.Role = RoleOwner
	}
}

// Active reports whether the admin account is enabled. A missing flag
// counts as enabled.
func (a *AdminUser) Active() bool {
	return a.IsActive == nil || *a.IsActive
}

func (a *AdminUser) Validate() error {
	if a.Name == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if a.Email == "" {
		return &ValidationError{Field: "email", Reason: "is required"}
	}
	if a.PasswordHash == "" {
		return &ValidationError{Field: "password_hash", Reason: "is required"}
	}
	if a.Role != RoleOwner && a.Role != RoleManager {
		return &ValidationError{Field: "role", Reason: "must be one of: owner, manager"}
	}
	return nil
}
