package db

import (
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/TalentLink/talentGo/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type PostLikeRepositoryInterface interface {
	Save(model odm.DbModel) chan error
	DeleteById(id string) chan error
	IsExistsById(id string) bool
	IsLiked(userId, postId string) bool
	CountForPost(postId string) int64
}

type PostLikeRepository struct {
	odm.AbstractRepository[models.PostLikeModel]
}

func (r *PostLikeRepository) IsLiked(userId, postId string) bool {
	return r.IsExistsById(models.GetPostLikeId(userId, postId))
}

// CountForPost counts like documents for a post. This is the authoritative
// count the redundant likeCount counter is reconciled against.
func (r *PostLikeRepository) CountForPost(postId string) int64 {
	countChan, errChan := r.CountDocuments(bson.M{"postId": postId})

	select {
	case count := <-countChan:
		return count
	case err := <-errChan:
		logger.Error("Failed counting likes", zap.Error(err))
		return 0
	}
}
