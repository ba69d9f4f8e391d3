package dto

type CreateTopicInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category"`
}

type ListTopicsQuery struct {
	Limit    int64  `form:"limit,default=50"`
	Category string `form:"category"`
}
