package models

import "time"

// Profile represents a user profile record (PostgreSQL).
// The ID is the Firebase UID assigned when the account is created;
// the avatar lives in external object storage and is referenced by URL.
type Profile struct {
	ID        string    `json:"id" gorm:"primaryKey;size:128"`
	FullName  *string   `json:"full_name"`
	Bio       *string   `json:"bio"`
	College   *string   `json:"college"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateProfileRequest defines the request body for editing a profile.
// Only the fields present in the body are written.
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name,omitempty" validate:"omitempty,min=1,max=80"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	College   *string `json:"college,omitempty" validate:"omitempty,max=120"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

// Fields returns the column map for a partial update.
func (req *UpdateProfileRequest) Fields() map[string]any {
	fields := map[string]any{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.College != nil {
		fields["college"] = *req.College
	}
	if req.AvatarURL != nil {
		fields["avatar_url"] = *req.AvatarURL
	}
	return fields
}
