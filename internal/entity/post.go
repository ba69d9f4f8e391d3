package entity

import "time"

// Post categories shown in the feed filter.
const (
	PostTypeGeneral      = "General Feed"
	PostTypeOpportunity  = "Opportunity"
	PostTypeQuestion     = "Question"
	PostTypeAnnouncement = "Announcement"
)

// Post carries the author's display fields denormalized at creation time so
// the feed can render without a join per row.
type Post struct {
	ID            string    `json:"id" bson:"id"`
	Content       string    `json:"content" bson:"content"`
	AuthorID      string    `json:"author_id" bson:"author_id"`
	AuthorName    string    `json:"author_name" bson:"author_name"`
	AuthorRole    string    `json:"author_role" bson:"author_role"`
	AuthorCountry string    `json:"author_country,omitempty" bson:"author_country,omitempty"`
	PostType      string    `json:"post_type" bson:"post_type"`
	ImageURL      string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Tags          []string  `json:"tags" bson:"tags"`
	LikesCount    int64     `json:"likes_count" bson:"likes_count"`
	CommentsCount int64     `json:"comments_count" bson:"comments_count"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

type Comment struct {
	ID         string    `json:"id" bson:"id"`
	Content    string    `json:"content" bson:"content"`
	PostID     string    `json:"post_id" bson:"post_id"`
	AuthorID   string    `json:"author_id" bson:"author_id"`
	AuthorName string    `json:"author_name" bson:"author_name"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
