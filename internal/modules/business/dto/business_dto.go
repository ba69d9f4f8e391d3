package dto

type CreateBusinessInput struct {
	Name             string            `json:"name" binding:"required"`
	Description      string            `json:"description" binding:"required"`
	Category         string            `json:"category" binding:"required"`
	ContactInfo      map[string]string `json:"contact_info"`
	Address          string            `json:"address" binding:"required"`
	IsHalalCertified bool              `json:"is_halal_certified"`
}

type ListBusinessesQuery struct {
	Limit    int64  `form:"limit,default=50"`
	Category string `form:"category"`
	Search   string `form:"search"`
}
