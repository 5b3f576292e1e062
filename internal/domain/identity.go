package domain

import "github.com/google/uuid"

// Identity is the authenticated caller as resolved by the session store.
// Credential verification itself happens outside this service; the core
// only consumes the resulting identity.
type Identity struct {
	UserID   uuid.UUID `json:"user_id"`
	FullName string    `json:"full_name"`
	Role     Role      `json:"role"`
}
