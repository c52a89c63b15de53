// Package dto holds the request/response types of the service layer.
package dto

type StatusResponse struct {
	Status string `json:"status"`
}

type IdRequest struct {
	Id string `json:"id"`
}

// AuthorInfo is display data attached to posts and comments.
type AuthorInfo struct {
	UserId   string `json:"userId"`
	Name     string `json:"name"`
	PhotoUrl string `json:"photoUrl"`
	Role     string `json:"role"`
}

type MediaUploadRequest struct {
	MediaExtension string `json:"mediaExtension"`
}

type MediaUploadResponse struct {
	UploadUrl string `json:"uploadUrl"`
	MediaUrl  string `json:"mediaUrl"`
}
