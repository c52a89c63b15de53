package service

import (
	"context"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/TalentLink/talentGo/async"
	"github.com/TalentLink/talentGo/db"
	"github.com/TalentLink/talentGo/dto"
	"github.com/TalentLink/talentGo/eligibility"
	"github.com/TalentLink/talentGo/models"
	"github.com/TalentLink/talentGo/s3client"
	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type ProfileService struct {
	db db.TalentDbInterface
}

func NewProfileService(db db.TalentDbInterface) *ProfileService {
	return &ProfileService{
		db: db,
	}
}

// CreateProfile creates the signup-time user record: role fixed, role-specific
// fields empty, completion cache at its computed (near-zero) value.
func (s *ProfileService) CreateProfile(ctx context.Context, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)

	if err := ValidateRole(req.Role); err != nil {
		return nil, err
	}
	if s.db.Profile(tenant).IsExistsById(userId) {
		return nil, status.Error(codes.AlreadyExists, "Profile already exists.")
	}

	profile := &models.ProfileModel{
		UserId:    userId,
		Role:      req.Role,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		CreatedOn: time.Now().Unix(),
	}
	completion := eligibility.ComputeCompletion(profile)
	profile.ProfileComplete = completion.IsComplete
	profile.ProfileCompletionPercentage = completion.CompletionPercentage

	err := <-s.db.Profile(tenant).Save(profile)
	if err != nil {
		logger.Error("Failed saving profile", zap.Error(err))
		return nil, status.Error(codes.Internal, "Failed creating profile.")
	}

	res := &dto.ProfileResponse{}
	copier.Copy(res, profile)
	return res, nil
}

func (s *ProfileService) GetProfile(ctx context.Context, req *dto.GetProfileRequest) (*dto.ProfileResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)
	if len(req.UserId) > 0 {
		userId = req.UserId
	}

	profile, err := s.fetchProfile(ctx, tenant, userId)
	if err != nil {
		return nil, err
	}

	res := &dto.ProfileResponse{}
	copier.Copy(res, profile)
	return res, nil
}

// UpdateProfile applies the submitted fields and persists them together with
// the recomputed completion cache in a single write, so the cached percentage
// can never diverge from the fields it was derived from.
func (s *ProfileService) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)

	profile, err := s.fetchProfile(ctx, tenant, userId)
	if err != nil {
		return nil, err
	}

	applyProfileFields(profile, req)

	completion := eligibility.ComputeCompletion(profile)
	profile.ProfileComplete = completion.IsComplete
	profile.ProfileCompletionPercentage = completion.CompletionPercentage

	saveErr := <-s.db.Profile(tenant).Save(profile)
	if saveErr != nil {
		logger.Error("Failed saving profile", zap.Error(saveErr))
		return nil, status.Error(codes.Internal, "Failed updating profile.")
	}

	res := &dto.ProfileResponse{}
	copier.Copy(res, profile)
	return res, nil
}

// GetCompletionStatus never fails for a missing record; an absent profile is
// reported as 0% complete.
func (s *ProfileService) GetCompletionStatus(ctx context.Context, req *dto.GetProfileRequest) (*dto.CompletionResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)
	if len(req.UserId) > 0 {
		userId = req.UserId
	}

	result := <-async.Go(ctx, func() (*models.ProfileModel, error) {
		profileChan, errChan := s.db.Profile(tenant).FindOneById(userId)
		select {
		case profile := <-profileChan:
			return profile, nil
		case err := <-errChan:
			return nil, err
		}
	})
	if result.Err != nil && result.Err != mongo.ErrNoDocuments {
		if ctx.Err() != nil {
			return nil, status.Error(codes.Canceled, "Request cancelled.")
		}
		logger.Error("Failed fetching profile", zap.Error(result.Err))
	}

	completion := eligibility.ComputeCompletion(result.Value)

	res := &dto.CompletionResponse{}
	copier.Copy(res, &completion)
	return res, nil
}

func (s *ProfileService) GetMediaUploadUrl(ctx context.Context, req *dto.MediaUploadRequest) (*dto.MediaUploadResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)

	uploadUrl, mediaUrl := s3client.GetPresignedUrlForMedia(tenant, userId, req.MediaExtension)
	if len(uploadUrl) == 0 {
		return nil, status.Error(codes.Internal, "Failed generating upload url.")
	}

	return &dto.MediaUploadResponse{
		UploadUrl: uploadUrl,
		MediaUrl:  mediaUrl,
	}, nil
}

func (s *ProfileService) fetchProfile(ctx context.Context, tenant, userId string) (*models.ProfileModel, error) {
	result := <-async.Go(ctx, func() (*models.ProfileModel, error) {
		profileChan, errChan := s.db.Profile(tenant).FindOneById(userId)
		select {
		case profile := <-profileChan:
			return profile, nil
		case err := <-errChan:
			return nil, err
		}
	})

	if result.Err != nil {
		if ctx.Err() != nil {
			return nil, status.Error(codes.Canceled, "Request cancelled.")
		}
		if result.Err == mongo.ErrNoDocuments {
			return nil, status.Error(codes.NotFound, "Profile not found.")
		}
		logger.Error("Failed fetching profile", zap.Error(result.Err))
		return nil, status.Error(codes.Internal, "Failed fetching profile.")
	}

	return result.Value, nil
}

func applyProfileFields(profile *models.ProfileModel, req *dto.UpdateProfileRequest) {
	profile.FirstName = req.FirstName
	profile.LastName = req.LastName
	profile.Email = req.Email
	profile.PhotoUrl = req.PhotoUrl

	switch profile.Role {
	case models.RoleUser:
		profile.Skills = req.Skills
		profile.Interests = req.Interests
		profile.Experience = req.Experience
		profile.Education = req.Education
	case models.RoleMentor:
		profile.Expertise = req.Expertise
		profile.MentorshipAreas = req.MentorshipAreas
		profile.Experience = req.Experience
		profile.Bio = req.Bio
		profile.Availability = req.Availability
		profile.LinkedInURL = req.LinkedInURL
	case models.RoleOrganization:
		profile.OrganizationName = req.OrganizationName
		profile.OrganizationType = req.OrganizationType
		profile.Website = req.Website
		profile.Description = req.Description
		profile.Location = req.Location
	}
}
