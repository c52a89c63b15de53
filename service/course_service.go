package service

import (
	"context"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/TalentLink/talentGo/db"
	"github.com/TalentLink/talentGo/dto"
	"github.com/TalentLink/talentGo/models"
	"github.com/jinzhu/copier"
	"github.com/thoas/go-funk"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type CourseService struct {
	db db.TalentDbInterface
}

func NewCourseService(db db.TalentDbInterface) *CourseService {
	return &CourseService{
		db: db,
	}
}

// CreateCourse publishes a course. Only mentor accounts can publish.
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)

	if err := ValidateCreateCourseRequest(req); err != nil {
		return nil, err
	}
	if err := s.requireMentor(tenant, userId); err != nil {
		return nil, err
	}

	course := &models.CourseModel{}
	copier.Copy(course, req)
	course.UserId = userId
	course.CreatedOn = time.Now().Unix()

	if err := <-s.db.Course(tenant).Save(course); err != nil {
		logger.Error("Failed saving course", zap.Error(err))
		return nil, status.Error(codes.Internal, "Failed creating course.")
	}

	res := &dto.CourseResponse{}
	copier.Copy(res, course)
	return res, nil
}

func (s *CourseService) ListCourses(ctx context.Context, req *dto.ListCoursesRequest) (*dto.CourseListResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)
	if req.PageSize == 0 {
		req.PageSize = 10
	}

	courses := s.db.Course(tenant).GetCourses(req.Filters, req.PageNumber, req.PageSize)

	courseDtos := []*dto.CourseResponse{}
	copier.Copy(&courseDtos, &courses)

	funk.ForEach(courseDtos, func(c *dto.CourseResponse) {
		c.ViewerIsEnrolled = s.db.Enrollment(tenant).IsEnrolled(userId, c.CourseId)
	})

	return &dto.CourseListResponse{
		Courses:    courseDtos,
		PageNumber: req.PageNumber,
		PageSize:   req.PageSize,
	}, nil
}

// ArchiveCourse soft-deletes a course; existing enrollments stay on record.
func (s *CourseService) ArchiveCourse(ctx context.Context, req *dto.IdRequest) (*dto.StatusResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)

	course, err := s.fetchCourse(tenant, req.Id)
	if err != nil {
		return nil, err
	}
	if course.UserId != userId {
		return nil, status.Error(codes.PermissionDenied, "Only the course mentor can archive a course.")
	}

	course.IsDeleted = true
	if err := <-s.db.Course(tenant).Save(course); err != nil {
		logger.Error("Failed archiving course", zap.Error(err))
		return nil, status.Error(codes.Internal, "Failed archiving course.")
	}

	return &dto.StatusResponse{Status: "success"}, nil
}

// Enroll is idempotent: enrolling twice in the same course is a no-op.
func (s *CourseService) Enroll(ctx context.Context, req *dto.EnrollRequest) (*dto.StatusResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)

	if s.db.Enrollment(tenant).IsEnrolled(userId, req.CourseId) {
		return &dto.StatusResponse{Status: "ALREADY_ENROLLED"}, nil
	}

	course, err := s.fetchCourse(tenant, req.CourseId)
	if err != nil {
		return nil, err
	}

	enrollment := &models.EnrollmentModel{
		UserId:    userId,
		CourseId:  req.CourseId,
		CreatedOn: time.Now().Unix(),
	}

	if err := <-s.db.Enrollment(tenant).Save(enrollment); err != nil {
		logger.Error("Failed saving enrollment", zap.Error(err))
		return nil, status.Error(codes.Internal, "Failed enrolling in course.")
	}

	course.NumEnrollments = course.NumEnrollments + 1
	<-s.db.Course(tenant).Save(course)

	return &dto.StatusResponse{Status: "success"}, nil
}

func (s *CourseService) GetEnrollments(ctx context.Context, req *dto.GetConnectionsRequest) (*dto.EnrollmentsResponse, error) {
	userId, tenant := getUserIdAndTenant(ctx)
	if len(req.UserId) > 0 {
		userId = req.UserId
	}
	if req.PageSize == 0 {
		req.PageSize = 10
	}

	courseIds := s.db.Enrollment(tenant).GetEnrolledCourseIds(userId, req.PageNumber, req.PageSize)
	return &dto.EnrollmentsResponse{CourseIds: courseIds}, nil
}

func (s *CourseService) fetchCourse(tenant, courseId string) (*models.CourseModel, error) {
	courseChan, errChan := s.db.Course(tenant).FindOneById(courseId)

	select {
	case course := <-courseChan:
		if course.IsDeleted {
			return nil, status.Error(codes.NotFound, "Course not found.")
		}
		return course, nil
	case err := <-errChan:
		if err == mongo.ErrNoDocuments {
			return nil, status.Error(codes.NotFound, "Course not found.")
		}
		logger.Error("Failed fetching course", zap.Error(err))
		return nil, status.Error(codes.Internal, "Failed fetching course.")
	}
}

func (s *CourseService) requireMentor(tenant, userId string) error {
	profileChan, errChan := s.db.Profile(tenant).FindOneById(userId)

	select {
	case profile := <-profileChan:
		if profile.Role != models.RoleMentor {
			return status.Error(codes.FailedPrecondition, "Only mentors can publish courses.")
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
