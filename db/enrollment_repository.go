package db

import (
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/TalentLink/talentGo/models"
	"github.com/thoas/go-funk"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type EnrollmentRepositoryInterface interface {
	Save(model odm.DbModel) chan error
	IsEnrolled(userId, courseId string) bool
	GetEnrolledCourseIds(userId string, pageNumber, pageSize int64) []string
}

type EnrollmentRepository struct {
	odm.AbstractRepository[models.EnrollmentModel]
}

func (r *EnrollmentRepository) IsEnrolled(userId, courseId string) bool {
	return r.IsExistsById(userId + "/" + courseId)
}

func (r *EnrollmentRepository) GetEnrolledCourseIds(userId string, pageNumber, pageSize int64) []string {
	skip := pageNumber * pageSize

	enrollmentsChan, errChan := r.Find(bson.M{
		"userId": userId,
	}, bson.D{{Key: "createdOn", Value: -1}}, pageSize, skip)

	select {
	case enrollments := <-enrollmentsChan:
		return funk.Map(enrollments, func(e models.EnrollmentModel) string {
			return e.CourseId
		}).([]string)
	case err := <-errChan:
		logger.Error("Failed getting enrollments", zap.Error(err))
		return nil
	}
}
