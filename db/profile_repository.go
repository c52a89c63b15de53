package db

import (
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/TalentLink/talentGo/dto"
	"github.com/TalentLink/talentGo/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type ProfileRepositoryInterface interface {
	Save(model odm.DbModel) chan error
	FindOneById(id string) (chan *models.ProfileModel, chan error)
	IsExistsById(id string) bool
	GetMentors(filters *dto.MentorFilters, pageNumber, pageSize int64) []models.ProfileModel
}

type ProfileRepository struct {
	odm.AbstractRepository[models.ProfileModel]
}

// GetMentors returns mentor profiles matching the directory filters, newest
// first. Eligibility (the LinkedIn gate) is applied by the service on top of
// this query.
func (r *ProfileRepository) GetMentors(filters *dto.MentorFilters, pageNumber, pageSize int64) []models.ProfileModel {
	query := bson.M{"role": models.RoleMentor}
	if filters != nil && len(filters.Expertise) > 0 {
		query["expertise"] = bson.M{"$in": filters.Expertise}
	}
	if filters != nil && len(filters.Location) > 0 {
		query["location"] = filters.Location
	}

	sort := bson.D{
		{Key: "profileCompletionPercentage", Value: -1},
		{Key: "createdOn", Value: -1},
	}
	skip := pageNumber * pageSize

	mentorsChan, errChan := r.Find(query, sort, pageSize, skip)

	select {
	case mentors := <-mentorsChan:
		return mentors
	case err := <-errChan:
		logger.Error("Failed getting mentors", zap.Error(err))
		return []models.ProfileModel{}
	}
}
