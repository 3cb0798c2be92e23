// internal/model/idea.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type IdeaCategory string

const (
	CategoryPainPoint   IdeaCategory = "pain-point"
	CategoryOpportunity IdeaCategory = "opportunity"
	CategoryChallenge   IdeaCategory = "challenge"
)

// ParseCategory validates a category string at the deserialization boundary.
func ParseCategory(s string) (IdeaCategory, error) {
	switch IdeaCategory(s) {
	case CategoryPainPoint, CategoryOpportunity, CategoryChallenge:
		return IdeaCategory(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

type IdeaStatus string

const (
	StatusSubmitted    IdeaStatus = "submitted"
	StatusInReview     IdeaStatus = "in-review"
	StatusInRefinement IdeaStatus = "in-refinement"
	StatusImplemented  IdeaStatus = "implemented"
	StatusClosed       IdeaStatus = "closed"
	StatusMerged       IdeaStatus = "merged"
	StatusParked       IdeaStatus = "parked"
)

// ParseStatus validates a status string at the deserialization boundary.
func ParseStatus(s string) (IdeaStatus, error) {
	switch IdeaStatus(s) {
	case StatusSubmitted, StatusInReview, StatusInRefinement,
		StatusImplemented, StatusClosed, StatusMerged, StatusParked:
		return IdeaStatus(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

type Idea struct {
	ID               uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title            string       `gorm:"type:text;not null" json:"title"`
	Description      string       `gorm:"type:text;not null" json:"description"`
	Category         IdeaCategory `gorm:"type:text;not null" json:"category"`
	Status           IdeaStatus   `gorm:"type:text;not null;default:'submitted'" json:"status"`
	Priority         string       `gorm:"type:text" json:"priority,omitempty"`
	Department       string       `gorm:"type:text" json:"department,omitempty"`
	Tags             StringList   `gorm:"type:text[]" json:"tags"`
	Impact           string       `gorm:"type:text" json:"impact,omitempty"`
	Inspiration      string       `gorm:"type:text" json:"inspiration,omitempty"`
	SimilarSolutions string       `gorm:"type:text" json:"similarSolutions,omitempty"`
	AdminNotes       string       `gorm:"type:text" json:"adminNotes,omitempty"`
	AttachmentURL    string       `gorm:"type:text" json:"attachmentUrl,omitempty"`
	MediaURLs        MediaList    `gorm:"type:jsonb" json:"mediaUrls,omitempty"`
	Votes            int          `gorm:"not null;default:0;check:votes >= 0" json:"votes"`
	SubmittedByID    uuid.UUID    `gorm:"type:uuid;not null" json:"submittedById"`
	AssignedToID     *uuid.UUID   `gorm:"type:uuid" json:"assignedToId,omitempty"`
	AssignedRole     Role         `gorm:"type:text" json:"assignedRole,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`

	SubmittedBy *User `gorm:"foreignKey:SubmittedByID" json:"submittedBy,omitempty"`
	AssignedTo  *User `gorm:"foreignKey:AssignedToID" json:"assignedTo,omitempty"`
}

// Media is one attached media reference on an idea.
type Media struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// MediaList stores media references as a jsonb column.
type MediaList []Media

// Scan implements the sql.Scanner interface.
func (m *MediaList) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, m)
	}

	return json.Unmarshal(data, m)
}

// Value implements the driver.Valuer interface.
func (m MediaList) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// StringList is a custom type that implements the sql.Scanner and
// driver.Valuer interfaces for Postgres text arrays.
type StringList []string

// Scan implements the sql.Scanner interface.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = []string{}
		return nil
	}

	str, ok := value.(string)
	if !ok {
		if b, isBytes := value.([]byte); isBytes {
			str = string(b)
		} else {
			return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, l)
		}
	}

	trimmed := strings.Trim(str, "{}")
	if trimmed == "" {
		*l = []string{}
		return nil
	}
	*l = strings.Split(trimmed, ",")
	return nil
}

// Value implements the driver.Valuer interface.
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "{}", nil
	}
	return "{" + strings.Join(l, ",") + "}", nil
}
