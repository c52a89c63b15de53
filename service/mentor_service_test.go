package service

import (
	"context"
	"testing"

	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/TalentLink/talentGo/db"
	"github.com/TalentLink/talentGo/dto"
	"github.com/TalentLink/talentGo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type mockProfileRepo struct {
	profiles        map[string]*models.ProfileModel
	mentors         []models.ProfileModel
	getMentorsCalls int
}

func (m *mockProfileRepo) Save(model odm.DbModel) chan error {
	errChan := make(chan error, 1)
	if profile, ok := model.(*models.ProfileModel); ok {
		m.profiles[profile.UserId] = profile
	}
	errChan <- nil
	return errChan
}

func (m *mockProfileRepo) FindOneById(id string) (chan *models.ProfileModel, chan error) {
	profileChan := make(chan *models.ProfileModel, 1)
	errChan := make(chan error, 1)

	if profile, ok := m.profiles[id]; ok {
		profileChan <- profile
	} else {
		errChan <- mongo.ErrNoDocuments
	}
	return profileChan, errChan
}

func (m *mockProfileRepo) IsExistsById(id string) bool {
	_, ok := m.profiles[id]
	return ok
}

func (m *mockProfileRepo) GetMentors(_ *dto.MentorFilters, _, _ int64) []models.ProfileModel {
	m.getMentorsCalls++
	return m.mentors
}

type mockTalentDb struct {
	profileRepo  *mockProfileRepo
	feedPostRepo *mockFeedPostRepo
	commentRepo  *mockCommentRepo
}

func (m *mockTalentDb) Profile(_ string) db.ProfileRepositoryInterface { return m.profileRepo }

func (m *mockTalentDb) FeedPost(_ string) db.FeedPostRepositoryInterface { return m.feedPostRepo }

func (m *mockTalentDb) PostLike(_ string) db.PostLikeRepositoryInterface { return nil }

func (m *mockTalentDb) Comment(_ string) db.CommentRepositoryInterface { return m.commentRepo }

func (m *mockTalentDb) Connection(_ string) db.ConnectionRepositoryInterface { return nil }

func (m *mockTalentDb) Tag(_ string) db.TagRepositoryInterface { return nil }

func (m *mockTalentDb) JobPosting(_ string) db.JobPostingRepositoryInterface { return nil }

func (m *mockTalentDb) Course(_ string) db.CourseRepositoryInterface { return nil }

func (m *mockTalentDb) Enrollment(_ string) db.EnrollmentRepositoryInterface { return nil }

func stubSession(t *testing.T, userId, tenant string) {
	t.Helper()
	original := getUserIdAndTenant
	getUserIdAndTenant = func(_ context.Context) (string, string) {
		return userId, tenant
	}
	t.Cleanup(func() { getUserIdAndTenant = original })
}

func eligibleMentor(userId string) *models.ProfileModel {
	return &models.ProfileModel{
		UserId:                      userId,
		Role:                        models.RoleMentor,
		FirstName:                   "Sam",
		LastName:                    "Rivers",
		Expertise:                   []string{"distributed systems"},
		LinkedInURL:                 "https://linkedin.com/in/sam",
		ProfileCompletionPercentage: 100,
	}
}

func newMentorServiceForTest(repo *mockProfileRepo) *MentorService {
	return NewMentorService(&mockTalentDb{profileRepo: repo})
}

func TestGetMentorEligibility_ProfileNotFound(t *testing.T) {
	stubSession(t, "viewer", "acme")
	service := newMentorServiceForTest(&mockProfileRepo{profiles: map[string]*models.ProfileModel{}})

	_, err := service.GetMentorEligibility(context.Background(), &dto.GetProfileRequest{UserId: "ghost"})

	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGetMentorEligibility_NotAMentor(t *testing.T) {
	stubSession(t, "viewer", "acme")
	service := newMentorServiceForTest(&mockProfileRepo{profiles: map[string]*models.ProfileModel{
		"u1": {UserId: "u1", Role: models.RoleUser},
	}})

	_, err := service.GetMentorEligibility(context.Background(), &dto.GetProfileRequest{UserId: "u1"})

	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestGetMentorEligibility_Eligible(t *testing.T) {
	stubSession(t, "m1", "acme")
	service := newMentorServiceForTest(&mockProfileRepo{profiles: map[string]*models.ProfileModel{
		"m1": eligibleMentor("m1"),
	}})

	res, err := service.GetMentorEligibility(context.Background(), &dto.GetProfileRequest{})
	require.NoError(t, err)

	assert.True(t, res.IsEligible)
	assert.Equal(t, 100, res.CompletionPercentage)
	assert.Empty(t, res.UnmetRequirements)
	assert.Empty(t, res.Actions)
	assert.True(t, res.Requirements["linkedinURL"].Met)
}

func TestGetMentorEligibility_MissingLinkedIn(t *testing.T) {
	stubSession(t, "m1", "acme")
	mentor := eligibleMentor("m1")
	mentor.LinkedInURL = ""
	mentor.ProfileCompletionPercentage = 45
	service := newMentorServiceForTest(&mockProfileRepo{profiles: map[string]*models.ProfileModel{
		"m1": mentor,
	}})

	res, err := service.GetMentorEligibility(context.Background(), &dto.GetProfileRequest{})
	require.NoError(t, err)

	assert.False(t, res.IsEligible)
	require.Len(t, res.UnmetRequirements, 1)
	assert.Equal(t, "linkedinURL", res.UnmetRequirements[0].Key)
	require.Len(t, res.Actions, 1)
	assert.True(t, res.Actions[0].Urgent)
}

func TestGetMentorDirectory_FiltersIneligibleMentors(t *testing.T) {
	stubSession(t, "viewer", "acme")
	noLink := *eligibleMentor("m2")
	noLink.LinkedInURL = ""
	repo := &mockProfileRepo{
		profiles: map[string]*models.ProfileModel{},
		mentors:  []models.ProfileModel{*eligibleMentor("m1"), noLink},
	}
	service := newMentorServiceForTest(repo)

	res, err := service.GetMentorDirectory(context.Background(), &dto.GetMentorDirectoryRequest{})
	require.NoError(t, err)

	require.Len(t, res.Mentors, 1)
	assert.Equal(t, "m1", res.Mentors[0].UserId)
}

func TestGetMentorDirectory_ServesFromCache(t *testing.T) {
	stubSession(t, "viewer", "acme")
	repo := &mockProfileRepo{
		profiles: map[string]*models.ProfileModel{},
		mentors:  []models.ProfileModel{*eligibleMentor("m1")},
	}
	service := newMentorServiceForTest(repo)

	first, err := service.GetMentorDirectory(context.Background(), &dto.GetMentorDirectoryRequest{})
	require.NoError(t, err)
	second, err := service.GetMentorDirectory(context.Background(), &dto.GetMentorDirectoryRequest{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.getMentorsCalls)
}

func TestGetMentorDirectory_DistinctFiltersMissTheCache(t *testing.T) {
	stubSession(t, "viewer", "acme")
	repo := &mockProfileRepo{
		profiles: map[string]*models.ProfileModel{},
		mentors:  []models.ProfileModel{*eligibleMentor("m1")},
	}
	service := newMentorServiceForTest(repo)

	_, err := service.GetMentorDirectory(context.Background(), &dto.GetMentorDirectoryRequest{})
	require.NoError(t, err)
	_, err = service.GetMentorDirectory(context.Background(), &dto.GetMentorDirectoryRequest{
		Filters: &dto.MentorFilters{Location: "Berlin"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, repo.getMentorsCalls)
}

func TestGetMentorDirectory_CachedResultsAreIsolated(t *testing.T) {
	stubSession(t, "viewer", "acme")
	repo := &mockProfileRepo{
		profiles: map[string]*models.ProfileModel{},
		mentors:  []models.ProfileModel{*eligibleMentor("m1")},
	}
	service := newMentorServiceForTest(repo)

	first, err := service.GetMentorDirectory(context.Background(), &dto.GetMentorDirectoryRequest{})
	require.NoError(t, err)
	first.Mentors[0].UserId = "tampered"

	second, err := service.GetMentorDirectory(context.Background(), &dto.GetMentorDirectoryRequest{})
	require.NoError(t, err)

	assert.Equal(t, "m1", second.Mentors[0].UserId)
	assert.Equal(t, 1, repo.getMentorsCalls)
}

func TestClearDirectoryCache(t *testing.T) {
	stubSession(t, "viewer", "acme")
	repo := &mockProfileRepo{
		profiles: map[string]*models.ProfileModel{},
		mentors:  []models.ProfileModel{*eligibleMentor("m1")},
	}
	service := newMentorServiceForTest(repo)

	_, err := service.GetMentorDirectory(context.Background(), &dto.GetMentorDirectoryRequest{})
	require.NoError(t, err)

	service.ClearDirectoryCache()

	_, err = service.GetMentorDirectory(context.Background(), &dto.GetMentorDirectoryRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.getMentorsCalls)
}
