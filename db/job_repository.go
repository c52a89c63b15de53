package db

import (
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/TalentLink/talentGo/dto"
	"github.com/TalentLink/talentGo/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type JobPostingRepositoryInterface interface {
	Save(model odm.DbModel) chan error
	FindOneById(id string) (chan *models.JobPostingModel, chan error)
	Search(filters *dto.JobFilters, pageNumber, pageSize int64) []models.JobPostingModel
}

type JobPostingRepository struct {
	odm.AbstractRepository[models.JobPostingModel]
}

// Search returns open (non-deleted) job postings matching the filters,
// newest first.
func (r *JobPostingRepository) Search(filters *dto.JobFilters, pageNumber, pageSize int64) []models.JobPostingModel {
	query := bson.M{"isDeleted": false}
	if filters != nil && len(filters.Skills) > 0 {
		query["skills"] = bson.M{"$in": filters.Skills}
	}
	if filters != nil && len(filters.Location) > 0 {
		query["location"] = filters.Location
	}
	if filters != nil && len(filters.JobType) > 0 {
		query["jobType"] = filters.JobType
	}

	sort := bson.D{{Key: "createdOn", Value: -1}}
	skip := pageNumber * pageSize

	jobsChan, errChan := r.Find(query, sort, pageSize, skip)

	select {
	case jobs := <-jobsChan:
		return jobs
	case err := <-errChan:
		logger.Error("Failed searching jobs", zap.Error(err))
		return []models.JobPostingModel{}
	}
}
