package models

// PostLikeModel is the membership set behind a post's like counter.
// Document id is userId/postId, so existence checks are a single id lookup.
type PostLikeModel struct {
	UserId string `bson:"userId"`
	PostId string `bson:"postId"`

	CreatedOn int64 `bson:"createdOn"`
}

func (p *PostLikeModel) Id() string {
	return GetPostLikeId(p.UserId, p.PostId)
}

func GetPostLikeId(userId, postId string) string {
	return userId + "/" + postId
}
