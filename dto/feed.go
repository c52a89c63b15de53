package dto

type MediaUrl struct {
	Url      string `json:"url"`
	MimeType string `json:"mimeType"`
}

type WebPreview struct {
	Title        string `json:"title"`
	PreviewImage string `json:"previewImage"`
	Url          string `json:"url"`
	Description  string `json:"description"`
}

type CreatePostRequest struct {
	Title     string     `json:"title"`
	Post      string     `json:"post"`
	Tags      []string   `json:"tags"`
	MediaUrls []MediaUrl `json:"mediaUrls"`
}

type PostResponse struct {
	PostId      string       `json:"postId"`
	Title       string       `json:"title"`
	Post        string       `json:"post"`
	MediaUrls   []MediaUrl   `json:"mediaUrls"`
	WebPreviews []WebPreview `json:"webPreviews"`
	UserId      string       `json:"userId"`
	LikeCount   int64        `json:"likeCount"`
	NumReplies  int64        `json:"numReplies"`
	Tags        []string     `json:"tags"`
	CreatedOn   int64        `json:"createdOn"`

	AuthorInfo     *AuthorInfo `json:"authorInfo"`
	ViewerHasLiked bool        `json:"viewerHasLiked"`
}

type FeedFilters struct {
	Tag       string `json:"tag"`
	CreatedBy string `json:"createdBy"`
}

type GetFeedRequest struct {
	Filters    *FeedFilters `json:"filters"`
	PageNumber int64        `json:"pageNumber"`
	PageSize   int64        `json:"pageSize"`
}

type FeedResponse struct {
	Posts      []*PostResponse `json:"posts"`
	PageNumber int64           `json:"pageNumber"`
	PageSize   int64           `json:"pageSize"`
}

type PostIdRequest struct {
	PostId string `json:"postId"`
}

type GetTagsRequest struct {
	Limit int64 `json:"limit"`
}

type TagListResponse struct {
	Tags []string `json:"tags"`
}

type GetConnectionsRequest struct {
	UserId     string `json:"userId"`
	PageNumber int64  `json:"pageNumber"`
	PageSize   int64  `json:"pageSize"`
}

type LikeResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

type CommentRequest struct {
	PostId  string `json:"postId"`
	Content string `json:"content"`
}

type CommentResponse struct {
	CommentId  string      `json:"commentId"`
	PostId     string      `json:"postId"`
	UserId     string      `json:"userId"`
	Content    string      `json:"content"`
	CreatedOn  int64       `json:"createdOn"`
	AuthorInfo *AuthorInfo `json:"authorInfo"`
}

type FetchCommentsRequest struct {
	PostId     string `json:"postId"`
	PageNumber int64  `json:"pageNumber"`
	PageSize   int64  `json:"pageSize"`
}

type CommentsResponse struct {
	Comments   []*CommentResponse `json:"comments"`
	PageNumber int64              `json:"pageNumber"`
	PageSize   int64              `json:"pageSize"`
}

type ConnectionRequest struct {
	UserId string `json:"userId"`
}

type ConnectionsResponse struct {
	UserIds []string `json:"userIds"`
}

type IsFollowingRequest struct {
	Follower string `json:"follower"`
	Followee string `json:"followee"`
}

type IsFollowingResponse struct {
	IsFollowing bool `json:"isFollowing"`
}
