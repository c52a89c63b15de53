package db

import (
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/TalentLink/talentGo/models"
	"github.com/thoas/go-funk"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type ConnectionRepositoryInterface interface {
	Save(model odm.DbModel) chan error
	DeleteById(id string) chan error
	IsExistsById(id string) bool
	GetFollowers(userId string, pageNumber, pageSize int64) []string
	GetFollowing(userId string, pageNumber, pageSize int64) []string
}

type ConnectionRepository struct {
	odm.AbstractRepository[models.ConnectionModel]
}

func (r *ConnectionRepository) GetFollowers(userId string, pageNumber, pageSize int64) []string {
	skip := pageNumber * pageSize

	followersChan, errChan := r.Find(bson.M{
		"userId": userId,
	}, bson.D{{Key: "createdOn", Value: -1}}, pageSize, skip)

	select {
	case followers := <-followersChan:
		return funk.Map(followers, func(c models.ConnectionModel) string {
			return c.FollowerId
		}).([]string)
	case err := <-errChan:
		logger.Error("Failed getting followers", zap.Error(err))
		return nil
	}
}

func (r *ConnectionRepository) GetFollowing(userId string, pageNumber, pageSize int64) []string {
	skip := pageNumber * pageSize

	followingChan, errChan := r.Find(bson.M{
		"followerId": userId,
	}, bson.D{{Key: "createdOn", Value: -1}}, pageSize, skip)

	select {
	case following := <-followingChan:
		return funk.Map(following, func(c models.ConnectionModel) string {
			return c.UserId
		}).([]string)
	case err := <-errChan:
		logger.Error("Failed getting following", zap.Error(err))
		return nil
	}
}
