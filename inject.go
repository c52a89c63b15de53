// Package talentgo wires the TalentLink backend together. The services are
// consumed through function calls; there is no network surface here.
package talentgo

import (
	"github.com/TalentLink/talentGo/db"
	"github.com/TalentLink/talentGo/service"
	"github.com/joho/godotenv"
)

type Inject struct {
	TalentDb *db.TalentDb

	ProfileService     *service.ProfileService
	MentorService      *service.MentorService
	FeedPostService    *service.FeedPostService
	PostActionsService *service.PostActionsService
	ConnectionService  *service.ConnectionService
	JobService         *service.JobService
	CourseService      *service.CourseService
}

func NewInject() *Inject {
	godotenv.Load()
	inj := &Inject{}

	inj.TalentDb = &db.TalentDb{}

	inj.ProfileService = service.NewProfileService(inj.TalentDb)
	inj.MentorService = service.NewMentorService(inj.TalentDb)
	inj.FeedPostService = service.NewFeedPostService(inj.TalentDb)
	inj.PostActionsService = service.NewPostActionsService(inj.TalentDb)
	inj.ConnectionService = service.NewConnectionService(inj.TalentDb)
	inj.JobService = service.NewJobService(inj.TalentDb)
	inj.CourseService = service.NewCourseService(inj.TalentDb)
	return inj
}
