package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/TalentLink/talentGo/async"
	"github.com/TalentLink/talentGo/cache"
	"github.com/TalentLink/talentGo/db"
	"github.com/TalentLink/talentGo/dto"
	"github.com/TalentLink/talentGo/eligibility"
	"github.com/TalentLink/talentGo/models"
	"github.com/jinzhu/copier"
	"github.com/thoas/go-funk"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const directoryCacheTTL = 5 * time.Minute

type MentorService struct {
	db             db.TalentDbInterface
	directoryCache *cache.Expiring[*dto.MentorDirectoryResponse]
}

func NewMentorService(db db.TalentDbInterface) *MentorService {
	return &MentorService{
		db:             db,
		directoryCache: cache.New[*dto.MentorDirectoryResponse](directoryCacheTTL),
	}
}

// GetMentorEligibility evaluates the mentor visibility gate for the caller
// (or the requested user). Not-found and wrong-role conditions propagate as
// errors; they are never reported as "not eligible".
func (s *MentorService) GetMentorEligibility(ctx context.Context, req *dto.GetProfileRequest) (*dto.MentorEligibilityResponse, error) {
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

	if result.Err != nil {
		if ctx.Err() != nil {
			return nil, status.Error(codes.Canceled, "Request cancelled.")
		}
		if result.Err == mongo.ErrNoDocuments {
			return nil, status.Error(codes.NotFound, "Mentor profile not found.")
		}
		logger.Error("Failed fetching mentor profile", zap.Error(result.Err))
		return nil, status.Error(codes.Internal, "Failed fetching mentor profile.")
	}

	evaluation, err := eligibility.EvaluateMentor(result.Value)
	switch err {
	case nil:
	case eligibility.ErrProfileNotFound:
		return nil, status.Error(codes.NotFound, "Mentor profile not found.")
	case eligibility.ErrNotMentor:
		return nil, status.Error(codes.FailedPrecondition, "Profile is not a mentor profile.")
	default:
		return nil, status.Error(codes.Internal, err.Error())
	}

	message := eligibility.BuildEligibilityMessage(evaluation)

	res := &dto.MentorEligibilityResponse{
		IsEligible:           evaluation.IsEligible,
		CompletionPercentage: evaluation.CompletionPercentage,
		Requirements:         map[string]dto.RequirementStatus{},
		UnmetRequirements:    []dto.RequirementStatus{},
		MessageType:          message.Type,
		MessageTitle:         message.Title,
		MessageBody:          message.Body,
		Actions:              []dto.EligibilityAction{},
	}
	for key, requirement := range evaluation.Requirements {
		res.Requirements[key] = dto.RequirementStatus{
			Key:         requirement.Key,
			Label:       requirement.Label,
			Description: requirement.Description,
			Met:         requirement.Met,
		}
	}
	copier.Copy(&res.UnmetRequirements, &evaluation.UnmetRequirements)
	copier.Copy(&res.Actions, &message.Actions)

	return res, nil
}

// GetMentorDirectory lists eligible mentors. Results are served from a small
// expiring cache; profile writes do not purge it, so a freshly eligible
// mentor may take up to the TTL to appear.
func (s *MentorService) GetMentorDirectory(ctx context.Context, req *dto.GetMentorDirectoryRequest) (*dto.MentorDirectoryResponse, error) {
	_, tenant := getUserIdAndTenant(ctx)
	if req.PageSize == 0 {
		req.PageSize = 10
	}

	cacheKey := directoryCacheKey(tenant, req)
	if cached, ok := s.directoryCache.Get(cacheKey); ok {
		return cloneDirectory(cached), nil
	}

	mentors := s.db.Profile(tenant).GetMentors(req.Filters, req.PageNumber, req.PageSize)

	eligible := funk.Filter(mentors, func(m models.ProfileModel) bool {
		return eligibility.IsValidLinkedInURL(m.LinkedInURL)
	}).([]models.ProfileModel)

	cards := funk.Map(eligible, func(m models.ProfileModel) dto.MentorCard {
		return dto.MentorCard{
			UserId:               m.UserId,
			FirstName:            m.FirstName,
			LastName:             m.LastName,
			PhotoUrl:             m.PhotoUrl,
			Expertise:            m.Expertise,
			MentorshipAreas:      m.MentorshipAreas,
			Bio:                  m.Bio,
			Availability:         m.Availability,
			LinkedInURL:          m.LinkedInURL,
			CompletionPercentage: m.ProfileCompletionPercentage,
		}
	}).([]dto.MentorCard)

	res := &dto.MentorDirectoryResponse{
		Mentors:    cards,
		PageNumber: req.PageNumber,
		PageSize:   req.PageSize,
	}
	s.directoryCache.Set(cacheKey, cloneDirectory(res))

	return res, nil
}

// cloneDirectory keeps the cached document private: callers always receive
// their own card slice, so mutating a response never corrupts later hits.
func cloneDirectory(res *dto.MentorDirectoryResponse) *dto.MentorDirectoryResponse {
	cloned := &dto.MentorDirectoryResponse{}
	copier.Copy(cloned, res)
	return cloned
}

// ClearDirectoryCache is the manual invalidation hook for admin tooling.
func (s *MentorService) ClearDirectoryCache() {
	s.directoryCache.Clear()
}

func directoryCacheKey(tenant string, req *dto.GetMentorDirectoryRequest) string {
	expertise := ""
	location := ""
	if req.Filters != nil {
		expertise = strings.Join(req.Filters.Expertise, ",")
		location = req.Filters.Location
	}
	return fmt.Sprintf("%s/%s/%s/%d/%d", tenant, expertise, location, req.PageNumber, req.PageSize)
}
