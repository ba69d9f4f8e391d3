package entity

import "time"

// Announcement types and priorities used by the admin announcement board.
const (
	AnnouncementGeneral = "General"
	AnnouncementJanazah = "Janazah"
	AnnouncementCharity = "Charity"
	AnnouncementEvent   = "Event"

	PriorityLow    = "Low"
	PriorityNormal = "Normal"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"
)

type Announcement struct {
	ID               string     `json:"id" bson:"id"`
	Title            string     `json:"title" bson:"title"`
	Content          string     `json:"content" bson:"content"`
	AuthorID         string     `json:"author_id" bson:"author_id"`
	AuthorName       string     `json:"author_name" bson:"author_name"`
	AnnouncementType string     `json:"announcement_type" bson:"announcement_type"`
	Priority         string     `json:"priority" bson:"priority"`
	IsActive         bool       `json:"is_active" bson:"is_active"`
	CreatedAt        time.Time  `json:"created_at" bson:"created_at"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty" bson:"expires_at,omitempty"`
}

type Business struct {
	ID               string            `json:"id" bson:"id"`
	Name             string            `json:"name" bson:"name"`
	Description      string            `json:"description" bson:"description"`
	Category         string            `json:"category" bson:"category"`
	ContactInfo      map[string]string `json:"contact_info" bson:"contact_info"`
	Address          string            `json:"address" bson:"address"`
	IsHalalCertified bool              `json:"is_halal_certified" bson:"is_halal_certified"`
	IsVerified       bool              `json:"is_verified" bson:"is_verified"`
	Rating           float64           `json:"rating" bson:"rating"`
	ReviewsCount     int64             `json:"reviews_count" bson:"reviews_count"`
	CreatedAt        time.Time         `json:"created_at" bson:"created_at"`
}

type ForumTopic struct {
	ID           string    `json:"id" bson:"id"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description" bson:"description"`
	Category     string    `json:"category" bson:"category"`
	CreatorID    string    `json:"creator_id" bson:"creator_id"`
	CreatorName  string    `json:"creator_name" bson:"creator_name"`
	PostsCount   int64     `json:"posts_count" bson:"posts_count"`
	LastActivity time.Time `json:"last_activity" bson:"last_activity"`
	IsPinned     bool      `json:"is_pinned" bson:"is_pinned"`
	IsLocked     bool      `json:"is_locked" bson:"is_locked"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// BotConversation is an audit record of one exchange with the assistant.
type BotConversation struct {
	ID          string    `json:"id" bson:"id"`
	UserID      string    `json:"user_id" bson:"user_id"`
	UserMessage string    `json:"user_message" bson:"user_message"`
	BotResponse string    `json:"bot_response" bson:"bot_response"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
