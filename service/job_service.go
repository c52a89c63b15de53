package service

import (
	"context"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/TalentLink/talentGo/db"
	"github.com/TalentLink/talentGo/dto"
	"github.com/TalentLink/talentGo/models"
	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type JobService struct {
	db db.TalentDbInterface
}

func NewJobService(db db.TalentDbInterface) *JobService {
	return &JobService{
		db: db,
	}
}

// CreateJob posts a job listing. Only organization accounts can post jobs.
func (s *JobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)

	if err := ValidateCreateJobRequest(req); err != nil {
		return nil, err
	}
	if err := s.requireRole(tenant, userId, models.RoleOrganization, "Only organizations can post jobs."); err != nil {
		return nil, err
	}

	job := &models.JobPostingModel{}
	copier.Copy(job, req)
	job.UserId = userId
	job.CreatedOn = time.Now().Unix()

	if err := <-s.db.JobPosting(tenant).Save(job); err != nil {
		logger.Error("Failed saving job posting", zap.Error(err))
		return nil, status.Error(codes.Internal, "Failed creating job posting.")
	}

	res := &dto.JobResponse{}
	copier.Copy(res, job)
	return res, nil
}

func (s *JobService) GetJob(ctx context.Context, req *dto.IdRequest) (*dto.JobResponse, error) {
	_, tenant := getUserIdAndTenant(ctx)

	job, err := s.fetchJob(tenant, req.Id)
	if err != nil {
		return nil, err
	}

	res := &dto.JobResponse{}
	copier.Copy(res, job)
	return res, nil
}

func (s *JobService) SearchJobs(ctx context.Context, req *dto.SearchJobsRequest) (*dto.JobListResponse, error) {
	_, tenant := getUserIdAndTenant(ctx)
	if req.PageSize == 0 {
		req.PageSize = 10
	}

	jobs := s.db.JobPosting(tenant).Search(req.Filters, req.PageNumber, req.PageSize)

	jobDtos := []*dto.JobResponse{}
	copier.Copy(&jobDtos, &jobs)

	return &dto.JobListResponse{
		Jobs:       jobDtos,
		PageNumber: req.PageNumber,
		PageSize:   req.PageSize,
	}, nil
}

// CloseJob soft-deletes a listing; the document stays for the org's records.
func (s *JobService) CloseJob(ctx context.Context, req *dto.IdRequest) (*dto.StatusResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)

	job, err := s.fetchJob(tenant, req.Id)
	if err != nil {
		return nil, err
	}
	if job.UserId != userId {
		return nil, status.Error(codes.PermissionDenied, "Only the posting organization can close a job.")
	}

	job.IsDeleted = true
	if err := <-s.db.JobPosting(tenant).Save(job); err != nil {
		logger.Error("Failed closing job", zap.Error(err))
		return nil, status.Error(codes.Internal, "Failed closing job.")
	}

	return &dto.StatusResponse{Status: "success"}, nil
}

// TrackJobView bumps the listing's view counter. Best effort: failures are
// logged and swallowed, a lost view increment is not worth surfacing.
func (s *JobService) TrackJobView(ctx context.Context, req *dto.IdRequest) (*dto.StatusResponse, error) {
	_, tenant := getUserIdAndTenant(ctx)

	jobChan, errChan := s.db.JobPosting(tenant).FindOneById(req.Id)

	select {
	case job := <-jobChan:
		job.NumViews = job.NumViews + 1
		if err := <-s.db.JobPosting(tenant).Save(job); err != nil {
			logger.Error("Failed tracking job view", zap.Error(err))
		}
	case err := <-errChan:
		logger.Error("Failed tracking job view", zap.Error(err))
	}

	return &dto.StatusResponse{Status: "success"}, nil
}

func (s *JobService) fetchJob(tenant, jobId string) (*models.JobPostingModel, error) {
	jobChan, errChan := s.db.JobPosting(tenant).FindOneById(jobId)

	select {
	case job := <-jobChan:
		if job.IsDeleted {
			return nil, status.Error(codes.NotFound, "Job posting not found.")
		}
		return job, nil
	case err := <-errChan:
		if err == mongo.ErrNoDocuments {
			return nil, status.Error(codes.NotFound, "Job posting not found.")
		}
		logger.Error("Failed fetching job posting", zap.Error(err))
		return nil, status.Error(codes.Internal, "Failed fetching job posting.")
	}
}

func (s *JobService) requireRole(tenant, userId, role, message string) error {
	profileChan, errChan := s.db.Profile(tenant).FindOneById(userId)

	select {
	case profile := <-profileChan:
		if profile.Role != role {
			return status.Error(codes.FailedPrecondition, message)
		}
		return nil
	case err := <-errChan:
		if err == mongo.ErrNoDocuments {
			return status.Error(codes.NotFound, "Profile not found.")
		}
		logger.Error("Failed fetching profile", zap.Error(err))
		return status.Error(codes.Internal, "Failed fetching profile.")
	}
}
