package models

// ConnectionModel records that FollowerId follows UserId's feed.
type ConnectionModel struct {
	UserId     string `bson:"userId"`
	FollowerId string `bson:"followerId"`

	CreatedOn int64 `bson:"createdOn"`
}

func (p *ConnectionModel) Id() string {
	return GetConnectionId(p.UserId, p.FollowerId)
}

func GetConnectionId(userId, followerId string) string {
	return userId + "/" + followerId
}
