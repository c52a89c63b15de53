package service

import (
	"context"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/TalentLink/talentGo/db"
	"github.com/TalentLink/talentGo/dto"
	"github.com/TalentLink/talentGo/extensions"
	"github.com/TalentLink/talentGo/models"
	"github.com/jinzhu/copier"
	"github.com/thoas/go-funk"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type FeedPostService struct {
	db db.TalentDbInterface
}

func NewFeedPostService(db db.TalentDbInterface) *FeedPostService {
	return &FeedPostService{
		db: db,
	}
}

func (s *FeedPostService) CreatePost(ctx context.Context, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)

	if err := ValidateCreatePostRequest(req); err != nil {
		return nil, err
	}

	post := &models.FeedPostModel{}
	copier.Copy(post, req)
	post.UserId = userId
	post.CreatedOn = time.Now().Unix()

	// link previews for any URLs in the post body.
	links := extensions.ExtractLinks(req.Post)
	if len(links) > 0 {
		previews := extensions.GeneratePreviews(links)
		copier.Copy(&post.WebPreviews, &previews)
	}

	savePostPromise := s.db.FeedPost(tenant).Save(post)
	saveTagsPromise := extensions.SaveTags(s.db, tenant, req.Tags)

	err := <-savePostPromise
	<-saveTagsPromise

	if err != nil {
		logger.Error("Failed saving post", zap.Error(err))
		return nil, status.Error(codes.Internal, "Failed creating post.")
	}

	res := &dto.PostResponse{}
	copier.Copy(res, post)
	return res, nil
}

func (s *FeedPostService) GetPost(ctx context.Context, req *dto.PostIdRequest) (*dto.PostResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)

	post, err := s.fetchPost(tenant, req.PostId)
	if err != nil {
		return nil, err
	}

	res := &dto.PostResponse{}
	copier.Copy(res, post)

	<-extensions.AttachPostViewerInfoAsync(s.db, res, userId, tenant)
	return res, nil
}

func (s *FeedPostService) GetFeed(ctx context.Context, req *dto.GetFeedRequest) (*dto.FeedResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)
	if req.PageSize == 0 {
		req.PageSize = 10
	}

	feed := s.db.FeedPost(tenant).GetFeed(req.Filters, req.PageNumber, req.PageSize)

	posts := []*dto.PostResponse{}
	copier.Copy(&posts, &feed)

	attachPromises := funk.Map(posts, func(p *dto.PostResponse) chan bool {
		return extensions.AttachPostViewerInfoAsync(s.db, p, userId, tenant)
	}).([]chan bool)
	for _, promise := range attachPromises {
		<-promise
	}

	return &dto.FeedResponse{
		Posts:      posts,
		PageNumber: req.PageNumber,
		PageSize:   req.PageSize,
	}, nil
}

// DeletePost is a soft delete; only the author can delete a post.
func (s *FeedPostService) DeletePost(ctx context.Context, req *dto.PostIdRequest) (*dto.StatusResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)

	post, err := s.fetchPost(tenant, req.PostId)
	if err != nil {
		return nil, err
	}
	if post.UserId != userId {
		return nil, status.Error(codes.PermissionDenied, "Only the author can delete a post.")
	}

	post.IsDeleted = true
	if err := <-s.db.FeedPost(tenant).Save(post); err != nil {
		logger.Error("Failed deleting post", zap.Error(err))
		return nil, status.Error(codes.Internal, "Failed deleting post.")
	}

	return &dto.StatusResponse{Status: "success"}, nil
}

func (s *FeedPostService) GetTags(ctx context.Context, req *dto.GetTagsRequest) (*dto.TagListResponse, error) {
	_, tenant := getUserIdAndTenant(ctx)
	if req.Limit == 0 {
		req.Limit = 10
	}

	tags := s.db.Tag(tenant).GetTagsRanked(req.Limit)

	return &dto.TagListResponse{
		Tags: funk.Map(tags, func(t models.PostTagModel) string { return t.Tag }).([]string),
	}, nil
}

func (s *FeedPostService) fetchPost(tenant, postId string) (*models.FeedPostModel, error) {
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
