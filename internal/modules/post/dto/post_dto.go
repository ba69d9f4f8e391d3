package dto

type CreatePostInput struct {
	Content  string   `json:"content" binding:"required"`
	PostType string   `json:"post_type" binding:"omitempty,oneof='General Feed' Opportunity Question Announcement"`
	ImageURL string   `json:"image_url"`
	Tags     []string `json:"tags"`
}

type CreateCommentInput struct {
	Content string `json:"content" binding:"required"`
}

type ListPostsQuery struct {
	Limit int64 `form:"limit,default=50"`
}
