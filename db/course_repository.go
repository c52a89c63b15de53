package db

import (
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/TalentLink/talentGo/dto"
	"github.com/TalentLink/talentGo/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type CourseRepositoryInterface interface {
	Save(model odm.DbModel) chan error
	FindOneById(id string) (chan *models.CourseModel, chan error)
	GetCourses(filters *dto.CourseFilters, pageNumber, pageSize int64) []models.CourseModel
}

type CourseRepository struct {
	odm.AbstractRepository[models.CourseModel]
}

func (r *CourseRepository) GetCourses(filters *dto.CourseFilters, pageNumber, pageSize int64) []models.CourseModel {
	query := bson.M{"isDeleted": false}
	if filters != nil && len(filters.Topic) > 0 {
		query["topics"] = filters.Topic
	}
	if filters != nil && len(filters.Level) > 0 {
		query["level"] = filters.Level
	}
	if filters != nil && len(filters.CreatedBy) > 0 {
		query["userId"] = filters.CreatedBy
	}

	sort := bson.D{
		{Key: "createdOn", Value: -1},
		{Key: "numEnrollments", Value: -1},
	}
	skip := pageNumber * pageSize

	coursesChan, errChan := r.Find(query, sort, pageSize, skip)

	select {
	case courses := <-coursesChan:
		return courses
	case err := <-errChan:
		logger.Error("Failed getting courses", zap.Error(err))
		return []models.CourseModel{}
	}
}
