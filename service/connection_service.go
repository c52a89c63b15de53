package service

import (
	"context"
	"time"

	"github.com/TalentLink/talentGo/db"
	"github.com/TalentLink/talentGo/dto"
	"github.com/TalentLink/talentGo/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type ConnectionService struct {
	db db.TalentDbInterface
}

func NewConnectionService(db db.TalentDbInterface) *ConnectionService {
	return &ConnectionService{
		db: db,
	}
}

// Follow subscribes the caller to req.UserId's feed.
func (s *ConnectionService) Follow(ctx context.Context, req *dto.ConnectionRequest) (*dto.StatusResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)

	if !s.db.Profile(tenant).IsExistsById(req.UserId) {
		return nil, status.Error(codes.NotFound, "User not found.")
	}

	connection := &models.ConnectionModel{
		UserId:     req.UserId,
		FollowerId: userId,
		CreatedOn:  time.Now().Unix(),
	}

	if s.db.Connection(tenant).IsExistsById(connection.Id()) {
		return &dto.StatusResponse{Status: "ALREADY_FOLLOWING"}, nil
	}

	if err := <-s.db.Connection(tenant).Save(connection); err != nil {
		return nil, status.Error(codes.Internal, "Failed following user.")
	}

	return &dto.StatusResponse{Status: "success"}, nil
}

func (s *ConnectionService) Unfollow(ctx context.Context, req *dto.ConnectionRequest) (*dto.StatusResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)

	connectionId := models.GetConnectionId(req.UserId, userId)

	if !s.db.Connection(tenant).IsExistsById(connectionId) {
		return &dto.StatusResponse{Status: "NOT_FOLLOWING"}, nil
	}

	if err := <-s.db.Connection(tenant).DeleteById(connectionId); err != nil {
		return nil, status.Error(codes.Internal, "Failed unfollowing user.")
	}

	return &dto.StatusResponse{Status: "success"}, nil
}

func (s *ConnectionService) GetFollowers(ctx context.Context, req *dto.GetConnectionsRequest) (*dto.ConnectionsResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)
	if len(req.UserId) > 0 {
		userId = req.UserId
	}
	if req.PageSize == 0 {
		req.PageSize = 10
	}

	followers := s.db.Connection(tenant).GetFollowers(userId, req.PageNumber, req.PageSize)
	return &dto.ConnectionsResponse{UserIds: followers}, nil
}

func (s *ConnectionService) GetFollowing(ctx context.Context, req *dto.GetConnectionsRequest) (*dto.ConnectionsResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)
	if len(req.UserId) > 0 {
		userId = req.UserId
	}
	if req.PageSize == 0 {
		req.PageSize = 10
	}

	following := s.db.Connection(tenant).GetFollowing(userId, req.PageNumber, req.PageSize)
	return &dto.ConnectionsResponse{UserIds: following}, nil
}

func (s *ConnectionService) IsFollowing(ctx context.Context, req *dto.IsFollowingRequest) (*dto.IsFollowingResponse, error) {
	_, tenant := getUserIdAndTenant(ctx)

	isFollowing := s.db.Connection(tenant).IsExistsById(
		models.GetConnectionId(req.Followee, req.Follower))

	return &dto.IsFollowingResponse{IsFollowing: isFollowing}, nil
}
