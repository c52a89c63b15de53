package models

import (
	"github.com/google/uuid"
)

// CommentModel is append-only; CreatedOn is assigned by the service at save
// time and returned to the caller as the authoritative timestamp.
type CommentModel struct {
	CommentId string `bson:"_id"`
	PostId    string `bson:"postId"`
	UserId    string `bson:"userId"`
	Content   string `bson:"content"`
	CreatedOn int64  `bson:"createdOn"`
	IsDeleted bool   `bson:"isDeleted"`
}

func (c *CommentModel) Id() string {
	if len(c.CommentId) == 0 {
		c.CommentId = uuid.NewString()
	}
	return c.CommentId
}
