package models

import (
	"github.com/google/uuid"
)

type MediaUrl struct {
	Url      string `bson:"url"`
	MimeType string `bson:"mimeType"`
}

type WebPreview struct {
	Title        string `bson:"title"`
	PreviewImage string `bson:"previewImage"`
	Url          string `bson:"url"`
	Description  string `bson:"description"`
}

// FeedPostModel is soft-deleted; LikeCount and NumReplies are denormalized
// counters reconciled on each like/comment mutation.
type FeedPostModel struct {
	PostId      string       `bson:"_id"`
	Title       string       `bson:"title"`
	Post        string       `bson:"post"`
	MediaUrls   []MediaUrl   `bson:"mediaUrls"`
	WebPreviews []WebPreview `bson:"webPreviews"`
	UserId      string       `bson:"userId"`
	LikeCount   int64        `bson:"likeCount"`
	NumReplies  int64        `bson:"numReplies"`
	Tags        []string     `bson:"tags"`
	IsDeleted   bool         `bson:"isDeleted"`
	CreatedOn   int64        `bson:"createdOn"`
}

func (p *FeedPostModel) Id() string {
	if len(p.PostId) == 0 {
		p.PostId = uuid.NewString()
	}
	return p.PostId
}
