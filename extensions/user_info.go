package extensions

import (
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/TalentLink/talentGo/db"
	"github.com/TalentLink/talentGo/dto"
	"go.uber.org/zap"
)

// GetAuthorInfo loads the display info of a post/comment author from the
// profiles collection. Missing authors resolve to nil, not an error.
func GetAuthorInfo(talentDb db.TalentDbInterface, tenant, userId string) chan *dto.AuthorInfo {
	result := make(chan *dto.AuthorInfo, 1)

	go func() {
		profileChan, errChan := talentDb.Profile(tenant).FindOneById(userId)

		select {
		case profile := <-profileChan:
			result <- &dto.AuthorInfo{
				UserId:   profile.UserId,
				Name:     profile.FirstName + " " + profile.LastName,
				PhotoUrl: profile.PhotoUrl,
				Role:     profile.Role,
			}
		case err := <-errChan:
			logger.Error("Failed getting author profile", zap.Error(err))
			result <- nil
		}
	}()

	return result
}

// AttachPostViewerInfoAsync adds the author's display info and the viewer's
// like membership to a post response.
func AttachPostViewerInfoAsync(
	talentDb db.TalentDbInterface,
	post *dto.PostResponse,
	viewerId, tenant string) chan bool {

	done := make(chan bool, 1)

	go func() {
		post.ViewerHasLiked = talentDb.PostLike(tenant).IsLiked(viewerId, post.PostId)
		post.AuthorInfo = <-GetAuthorInfo(talentDb, tenant, post.UserId)
		done <- true
	}()

	return done
}

// AttachCommentAuthorAsync adds the author's display info to a comment.
func AttachCommentAuthorAsync(
	talentDb db.TalentDbInterface,
	comment *dto.CommentResponse,
	tenant string) chan bool {

	done := make(chan bool, 1)

	go func() {
		comment.AuthorInfo = <-GetAuthorInfo(talentDb, tenant, comment.UserId)
		done <- true
	}()

	return done
}
