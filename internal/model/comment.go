// internal/model/comment.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	IdeaID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"ideaId"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null" json:"userId"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index" json:"parentId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	Author  *User      `gorm:"foreignKey:UserID" json:"author,omitempty"`
	Replies []*Comment `gorm:"-" json:"replies,omitempty"`
}

// BuildCommentTree arranges a flat comment list into reply trees. Comments
// whose parent is missing from the input are treated as roots rather than
// dropped. Input order is preserved at every level.
func BuildCommentTree(comments []*Comment) []*Comment {
	byID := make(map[uuid.UUID]*Comment, len(comments))
	for _, c := range comments {
		c.Replies = nil
		byID[c.ID] = c
	}

	var roots []*Comment
	for _, c := range comments {
		if c.ParentID != nil {
			if parent, ok := byID[*c.ParentID]; ok {
				parent.Replies = append(parent.Replies, c)
				continue
			}
		}
		roots = append(roots, c)
	}
	return roots
}
