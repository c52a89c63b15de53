package db

import (
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/TalentLink/talentGo/dto"
	"github.com/TalentLink/talentGo/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type FeedPostRepositoryInterface interface {
	Save(model odm.DbModel) chan error
	FindOneById(id string) (chan *models.FeedPostModel, chan error)
	GetFeed(filters *dto.FeedFilters, pageNumber, pageSize int64) []models.FeedPostModel
}

type FeedPostRepository struct {
	odm.AbstractRepository[models.FeedPostModel]
}

// GetFeed returns non-deleted posts matching the filters, newest and most
// engaged first.
func (r *FeedPostRepository) GetFeed(filters *dto.FeedFilters, pageNumber, pageSize int64) []models.FeedPostModel {
	query := bson.M{"isDeleted": false}
	if filters != nil && len(filters.Tag) > 0 {
		query["tags"] = filters.Tag
	}
	if filters != nil && len(filters.CreatedBy) > 0 {
		query["userId"] = filters.CreatedBy
	}

	sort := bson.D{
		{Key: "createdOn", Value: -1},
		{Key: "likeCount", Value: -1},
		{Key: "numReplies", Value: -1},
	}
	skip := pageNumber * pageSize

	postsChan, errChan := r.Find(query, sort, pageSize, skip)

	select {
	case posts := <-postsChan:
		return posts
	case err := <-errChan:
		logger.Error("Failed getting feed", zap.Error(err))
		return []models.FeedPostModel{}
	}
}
