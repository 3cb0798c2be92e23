// internal/model/user.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role is a closed enumeration. Free-form role strings from the wire are
// rejected at the boundary by ParseRole.
type Role string

const (
	RoleUser        Role = "user"
	RoleReviewer    Role = "reviewer"
	RoleTransformer Role = "transformer"
	RoleImplementer Role = "implementer"
	RoleAdmin       Role = "admin"
)

// AdminCapable reports whether the role may perform administrative actions.
func (r Role) AdminCapable() bool {
	switch r {
	case RoleAdmin, RoleReviewer, RoleTransformer, RoleImplementer:
		return true
	}
	return false
}

// ParseRole validates a role string at the deserialization boundary.
// The empty string maps to the default "user" role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleReviewer, RoleTransformer, RoleImplementer, RoleAdmin:
		return Role(s), nil
	case "":
		return RoleUser, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Username     string    `gorm:"type:citext;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:citext;uniqueIndex" json:"email,omitempty"`
	DisplayName  string    `gorm:"type:text" json:"displayName,omitempty"`
	Department   string    `gorm:"type:text" json:"department,omitempty"`
	Role         Role      `gorm:"type:text;not null;default:'user'" json:"role"`
	AvatarURL    string    `gorm:"type:text" json:"avatarUrl,omitempty"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Name returns the preferred human-readable name for display and search.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
