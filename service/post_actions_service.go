package service

import (
	"context"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/TalentLink/talentGo/db"
	"github.com/TalentLink/talentGo/dto"
	"github.com/TalentLink/talentGo/extensions"
	"github.com/TalentLink/talentGo/models"
	"github.com/TalentLink/talentGo/optimistic"
	"github.com/jinzhu/copier"
	"github.com/thoas/go-funk"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type PostActionsService struct {
	db db.TalentDbInterface
}

func NewPostActionsService(db db.TalentDbInterface) *PostActionsService {
	return &PostActionsService{
		db: db,
	}
}

// LikePost records the caller's like and returns the authoritative count.
// The redundant likeCount counter on the post is reconciled against the like
// membership collection on every mutation. Liking twice is a no-op.
func (s *PostActionsService) LikePost(ctx context.Context, req *dto.PostIdRequest) (*dto.LikeResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)

	post, err := s.fetchPost(tenant, req.PostId)
	if err != nil {
		return nil, err
	}

	like := &models.PostLikeModel{
		UserId:    userId,
		PostId:    req.PostId,
		CreatedOn: time.Now().Unix(),
	}

	if !s.db.PostLike(tenant).IsExistsById(like.Id()) {
		if err := <-s.db.PostLike(tenant).Save(like); err != nil {
			logger.Error("Failed saving like", zap.Error(err))
			return nil, status.Error(codes.Internal, "Failed liking post.")
		}

		post.LikeCount = s.db.PostLike(tenant).CountForPost(req.PostId)
		if err := <-s.db.FeedPost(tenant).Save(post); err != nil {
			logger.Error("Failed updating like count", zap.Error(err))
			return nil, status.Error(codes.Internal, "Failed liking post.")
		}
	}

	return &dto.LikeResponse{Liked: true, LikeCount: post.LikeCount}, nil
}

// UnlikePost removes the caller's like. Unliking a post that was never liked
// is a no-op.
func (s *PostActionsService) UnlikePost(ctx context.Context, req *dto.PostIdRequest) (*dto.LikeResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)

	post, err := s.fetchPost(tenant, req.PostId)
	if err != nil {
		return nil, err
	}

	likeId := models.GetPostLikeId(userId, req.PostId)

	if s.db.PostLike(tenant).IsExistsById(likeId) {
		if err := <-s.db.PostLike(tenant).DeleteById(likeId); err != nil {
			logger.Error("Failed removing like", zap.Error(err))
			return nil, status.Error(codes.Internal, "Failed unliking post.")
		}

		post.LikeCount = s.db.PostLike(tenant).CountForPost(req.PostId)
		if err := <-s.db.FeedPost(tenant).Save(post); err != nil {
			logger.Error("Failed updating like count", zap.Error(err))
			return nil, status.Error(codes.Internal, "Failed unliking post.")
		}
	}

	return &dto.LikeResponse{Liked: false, LikeCount: post.LikeCount}, nil
}

// LikeToggle builds the optimistic toggle for a post, seeded with the
// caller's current like state and the post's counter. View code renders the
// toggle's state immediately and settles on the delivered result.
func (s *PostActionsService) LikeToggle(ctx context.Context, postId string) (*optimistic.LikeToggle, error) {
	userId, tenant := getUserIdAndTenant(ctx)

	post, err := s.fetchPost(tenant, postId)
	if err != nil {
		return nil, err
	}

	initial := optimistic.LikeState{
		Liked: s.db.PostLike(tenant).IsLiked(userId, postId),
		Count: post.LikeCount,
	}

	return optimistic.NewLikeToggle(postId, initial, &likeRemote{service: s}), nil
}

// Comment appends a comment. There is no optimistic path here: the caller
// only renders the returned comment, whose timestamp the server assigned.
func (s *PostActionsService) Comment(ctx context.Context, req *dto.CommentRequest) (*dto.CommentResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)

	if err := ValidateCommentRequest(req); err != nil {
		return nil, err
	}

	post, err := s.fetchPost(tenant, req.PostId)
	if err != nil {
		return nil, err
	}

	comment := &models.CommentModel{
		PostId:    req.PostId,
		UserId:    userId,
		Content:   req.Content,
		CreatedOn: time.Now().Unix(),
	}

	if err := <-s.db.Comment(tenant).Save(comment); err != nil {
		logger.Error("Failed saving comment", zap.Error(err))
		return nil, status.Error(codes.Internal, "Failed adding comment.")
	}

	post.NumReplies = post.NumReplies + 1
	<-s.db.FeedPost(tenant).Save(post)

	res := &dto.CommentResponse{}
	copier.Copy(res, comment)
	<-extensions.AttachCommentAuthorAsync(s.db, res, tenant)
	return res, nil
}

func (s *PostActionsService) FetchComments(ctx context.Context, req *dto.FetchCommentsRequest) (*dto.CommentsResponse, error) {
	_, tenant := getUserIdAndTenant(ctx)
	if req.PageSize == 0 {
		req.PageSize = 10
	}

	comments := s.db.Comment(tenant).GetComments(req.PostId, req.PageNumber, req.PageSize)

	commentDtos := []*dto.CommentResponse{}
	copier.Copy(&commentDtos, &comments)

	attachPromises := funk.Map(commentDtos, func(c *dto.CommentResponse) chan bool {
		return extensions.AttachCommentAuthorAsync(s.db, c, tenant)
	}).([]chan bool)
	for _, promise := range attachPromises {
		<-promise
	}

	return &dto.CommentsResponse{
		Comments:   commentDtos,
		PageNumber: req.PageNumber,
		PageSize:   req.PageSize,
	}, nil
}

// DeleteComment soft-deletes the caller's comment and decrements the post's
// reply counter.
func (s *PostActionsService) DeleteComment(ctx context.Context, req *dto.IdRequest) (*dto.StatusResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)

	commentChan, errChan := s.db.Comment(tenant).FindOneById(req.Id)

	var comment *models.CommentModel
	select {
	case comment = <-commentChan:
	case err := <-errChan:
		if err == mongo.ErrNoDocuments {
			return nil, status.Error(codes.NotFound, "Comment not found.")
		}
		logger.Error("Failed fetching comment", zap.Error(err))
		return nil, status.Error(codes.Internal, "Failed deleting comment.")
	}

	if comment.IsDeleted {
		return nil, status.Error(codes.NotFound, "Comment not found.")
	}
	if comment.UserId != userId {
		return nil, status.Error(codes.PermissionDenied, "Only the author can delete a comment.")
	}

	comment.IsDeleted = true
	if err := <-s.db.Comment(tenant).Save(comment); err != nil {
		logger.Error("Failed deleting comment", zap.Error(err))
		return nil, status.Error(codes.Internal, "Failed deleting comment.")
	}

	if post, err := s.fetchPost(tenant, comment.PostId); err == nil {
		post.NumReplies = post.NumReplies - 1
		<-s.db.FeedPost(tenant).Save(post)
	}

	return &dto.StatusResponse{Status: "success"}, nil
}

func (s *PostActionsService) fetchPost(tenant, postId string) (*models.FeedPostModel, error) {
	postChan, errChan := s.db.FeedPost(tenant).FindOneById(postId)

	select {
	case post := <-postChan:
		if post.IsDeleted {
			return nil, status.Error(codes.NotFound, "Post not found.")
		}
		return post, nil
	case err := <-errChan:
		if err == mongo.ErrNoDocuments {
			return nil, status.Error(codes.NotFound, "Post not found.")
		}
		logger.Error("Failed fetching post", zap.Error(err))
		return nil, status.Error(codes.Internal, "Failed fetching post.")
	}
}

// likeRemote adapts the service mutations to the optimistic toggle's remote
// interface.
type likeRemote struct {
	service *PostActionsService
}

func (r *likeRemote) AddLike(ctx context.Context, postId string) (int64, error) {
	res, err := r.service.LikePost(ctx, &dto.PostIdRequest{PostId: postId})
	if err != nil {
		return 0, err
	}
	return res.LikeCount, nil
}

func (r *likeRemote) RemoveLike(ctx context.Context, postId string) (int64, error) {
	res, err := r.service.UnlikePost(ctx, &dto.PostIdRequest{PostId: postId})
	if err != nil {
		return 0, err
	}
	return res.LikeCount, nil
}
