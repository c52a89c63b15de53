package db

import (
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/TalentLink/talentGo/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type CommentRepositoryInterface interface {
	Save(model odm.DbModel) chan error
	FindOneById(id string) (chan *models.CommentModel, chan error)
	GetComments(postId string, pageNumber, pageSize int64) []models.CommentModel
}

type CommentRepository struct {
	odm.AbstractRepository[models.CommentModel]
}

// GetComments returns a post's comments in append order.
func (r *CommentRepository) GetComments(postId string, pageNumber, pageSize int64) []models.CommentModel {
	query := bson.M{
		"postId":    postId,
		"isDeleted": false,
	}

	sort := bson.D{{Key: "createdOn", Value: 1}}
	skip := pageNumber * pageSize

	commentsChan, errChan := r.Find(query, sort, pageSize, skip)

	select {
	case comments := <-commentsChan:
		return comments
	case err := <-errChan:
		logger.Error("Failed getting comments", zap.Error(err))
		return []models.CommentModel{}
	}
}
