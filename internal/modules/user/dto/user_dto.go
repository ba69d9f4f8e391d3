package dto

import "time"

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	// Admin accounts are provisioned out of band, never via registration.
	Role string `json:"role" binding:"omitempty,oneof=member mentor mentee"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UpdateProfileInput is the whitelist for self-service profile updates.
// Only the fields listed here can ever reach the store through PUT
// /api/users/me; role, email, ids, counters and timestamps are not part of
// the type, so a caller submitting them gets them silently dropped at the
// binding boundary.
type UpdateProfileInput struct {
	FullName    *string            `json:"full_name"`
	Country     *string            `json:"country"`
	Bio         *string            `json:"bio"`
	Skills      *[]string          `json:"skills"`
	Interests   *[]string          `json:"interests"`
	Gender      *string            `json:"gender"`
	DateOfBirth *time.Time         `json:"date_of_birth"`
	SocialLinks *map[string]string `json:"social_links"`
}

// Fields returns the sanitized set patch for the present fields only.
func (in UpdateProfileInput) Fields() map[string]any {
	set := make(map[string]any)
	if in.FullName != nil {
		set["full_name"] = *in.FullName
	}
	if in.Country != nil {
		set["country"] = *in.Country
	}
	if in.Bio != nil {
		set["bio"] = *in.Bio
	}
	if in.Skills != nil {
		set["skills"] = *in.Skills
	}
	if in.Interests != nil {
		set["interests"] = *in.Interests
	}
	if in.Gender != nil {
		set["gender"] = *in.Gender
	}
	if in.DateOfBirth != nil {
		set["date_of_birth"] = *in.DateOfBirth
	}
	if in.SocialLinks != nil {
		set["social_links"] = *in.SocialLinks
	}
	return set
}

type ListUsersQuery struct {
	Limit  int64  `form:"limit,default=50"`
	Search string `form:"search"`
}
