package db

import (
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/TalentLink/talentGo/models"
)

// TalentDbInterface is the repository surface the services depend on.
// Repositories are scoped per tenant; each tenant gets its own collections.
type TalentDbInterface interface {
	Profile(tenant string) ProfileRepositoryInterface
	FeedPost(tenant string) FeedPostRepositoryInterface
	PostLike(tenant string) PostLikeRepositoryInterface
	Comment(tenant string) CommentRepositoryInterface
	Connection(tenant string) ConnectionRepositoryInterface
	Tag(tenant string) TagRepositoryInterface
	JobPosting(tenant string) JobPostingRepositoryInterface
	Course(tenant string) CourseRepositoryInterface
	Enrollment(tenant string) EnrollmentRepositoryInterface
}

type TalentDb struct{}

var (
	_ ProfileRepositoryInterface    = (*ProfileRepository)(nil)
	_ FeedPostRepositoryInterface   = (*FeedPostRepository)(nil)
	_ PostLikeRepositoryInterface   = (*PostLikeRepository)(nil)
	_ CommentRepositoryInterface    = (*CommentRepository)(nil)
	_ ConnectionRepositoryInterface = (*ConnectionRepository)(nil)
	_ TagRepositoryInterface        = (*TagRepository)(nil)
	_ JobPostingRepositoryInterface = (*JobPostingRepository)(nil)
	_ CourseRepositoryInterface     = (*CourseRepository)(nil)
	_ EnrollmentRepositoryInterface = (*EnrollmentRepository)(nil)
)

func (d *TalentDb) Profile(tenant string) ProfileRepositoryInterface {
	return &ProfileRepository{
		AbstractRepository: odm.AbstractRepository[models.ProfileModel]{
			CollectionName: "profile_" + tenant,
		},
	}
}

func (d *TalentDb) FeedPost(tenant string) FeedPostRepositoryInterface {
	return &FeedPostRepository{
		AbstractRepository: odm.AbstractRepository[models.FeedPostModel]{
			CollectionName: "feed_post_" + tenant,
		},
	}
}

func (d *TalentDb) PostLike(tenant string) PostLikeRepositoryInterface {
	return &PostLikeRepository{
		AbstractRepository: odm.AbstractRepository[models.PostLikeModel]{
			CollectionName: "post_like_" + tenant,
		},
	}
}

func (d *TalentDb) Comment(tenant string) CommentRepositoryInterface {
	return &CommentRepository{
		AbstractRepository: odm.AbstractRepository[models.CommentModel]{
			CollectionName: "comment_" + tenant,
		},
	}
}

func (d *TalentDb) Connection(tenant string) ConnectionRepositoryInterface {
	return &ConnectionRepository{
		AbstractRepository: odm.AbstractRepository[models.ConnectionModel]{
			CollectionName: "connection_" + tenant,
		},
	}
}

func (d *TalentDb) Tag(tenant string) TagRepositoryInterface {
	return &TagRepository{
		AbstractRepository: odm.AbstractRepository[models.PostTagModel]{
			CollectionName: "tag_" + tenant,
		},
	}
}

func (d *TalentDb) JobPosting(tenant string) JobPostingRepositoryInterface {
	return &JobPostingRepository{
		AbstractRepository: odm.AbstractRepository[models.JobPostingModel]{
			CollectionName: "job_posting_" + tenant,
		},
	}
}

func (d *TalentDb) Course(tenant string) CourseRepositoryInterface {
	return &CourseRepository{
		AbstractRepository: odm.AbstractRepository[models.CourseModel]{
			CollectionName: "course_" + tenant,
		},
	}
}

func (d *TalentDb) Enrollment(tenant string) EnrollmentRepositoryInterface {
	return &EnrollmentRepository{
		AbstractRepository: odm.AbstractRepository[models.EnrollmentModel]{
			CollectionName: "enrollment_" + tenant,
		},
	}
}
