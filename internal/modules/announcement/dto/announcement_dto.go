package dto

import "time"

type CreateAnnouncementInput struct {
	Title            string     `json:"title" binding:"required"`
	Content          string     `json:"content" binding:"required"`
	AnnouncementType string     `json:"announcement_type" binding:"omitempty,oneof=General Janazah Charity Event"`
	Priority         string     `json:"priority" binding:"omitempty,oneof=Low Normal High Urgent"`
	ExpiresAt        *time.Time `json:"expires_at"`
}

type ListAnnouncementsQuery struct {
	Limit int64 `form:"limit,default=50"`
}
