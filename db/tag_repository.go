package db

import (
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/TalentLink/talentGo/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type TagRepositoryInterface interface {
	Save(model odm.DbModel) chan error
	FindOneById(id string) (chan *models.PostTagModel, chan error)
	GetTagsRanked(limit int64) []models.PostTagModel
}

type TagRepository struct {
	odm.AbstractRepository[models.PostTagModel]
}

func (r *TagRepository) GetTagsRanked(limit int64) []models.PostTagModel {
	sort := bson.D{{Key: "numPosts", Value: -1}}

	tagsChan, errChan := r.Find(bson.M{}, sort, limit, 0)

	select {
	case tags := <-tagsChan:
		return tags
	case err := <-errChan:
		logger.Error("Failed fetching tags", zap.Error(err))
		return []models.PostTagModel{}
	}
}
