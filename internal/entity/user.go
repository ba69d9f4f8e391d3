package entity

import "time"

// Roles a community member can hold. Registration defaults to member;
// admin is only ever assigned out of band.
const (
	RoleMember = "member"
	RoleMentor = "mentor"
	RoleMentee = "mentee"
	RoleAdmin  = "admin"
)

// User is the stored member record. PasswordHash is persisted but must be
// stripped (via Sanitize) before the record is serialized in any response.
type User struct {
	ID             string            `json:"id" bson:"id"`
	Email          string            `json:"email" bson:"email"`
	PasswordHash   string            `json:"password_hash,omitempty" bson:"password_hash,omitempty"`
	FullName       string            `json:"full_name" bson:"full_name"`
	Role           string            `json:"role" bson:"role"`
	Country        string            `json:"country,omitempty" bson:"country,omitempty"`
	Bio            string            `json:"bio,omitempty" bson:"bio,omitempty"`
	Skills         []string          `json:"skills" bson:"skills"`
	Interests      []string          `json:"interests" bson:"interests"`
	Gender         string            `json:"gender,omitempty" bson:"gender,omitempty"`
	DateOfBirth    *time.Time        `json:"date_of_birth,omitempty" bson:"date_of_birth,omitempty"`
	SocialLinks    map[string]string `json:"social_links" bson:"social_links"`
	IsVerified     bool              `json:"is_verified" bson:"is_verified"`
	FollowersCount int64             `json:"followers_count" bson:"followers_count"`
	FollowingCount int64             `json:"following_count" bson:"following_count"`
	PostsCount     int64             `json:"posts_count" bson:"posts_count"`
	CreatedAt      time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at" bson:"updated_at"`
}

// Sanitize returns a copy safe to serialize to clients.
func (u User) Sanitize() User {
	u.PasswordHash = ""
	return u
}
