package user

import (
	"mime/multipart"
	"strings"

	"github.com/livehost-agency/agency-backend-go/internal/pkg/validator"
)

type CreateSellerRequest struct {
	FullName         string `json:"full_name"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	ExperienceStatus string `json:"experience_status"`

	// Optional profile image, attached from the multipart form
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *CreateSellerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full name is required"})
	}
	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "username must be 3-50 characters (letters, digits, . _ -)"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if !validator.IsInSlice(r.ExperienceStatus, []string{string(ExperienceNewbie), string(ExperienceTenured)}) {
		errs = append(errs, validator.ValidationError{Field: "experience_status", Message: "experience_status must be one of: newbie, tenured"})
	}
	if r.FileHeader != nil {
		ext := strings.ToLower(r.FileHeader.Filename[strings.LastIndex(r.FileHeader.Filename, ".")+1:])
		if !validator.IsInSlice(ext, []string{"jpg", "jpeg", "png"}) {
			errs = append(errs, validator.ValidationError{Field: "profile_image", Message: "invalid file type: only jpg, jpeg, png allowed"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSellerRequest struct {
	ID               string  `json:"-"`
	FullName         *string `json:"full_name,omitempty"`
	Username         *string `json:"username,omitempty"`
	Email            *string `json:"email,omitempty"`
	ExperienceStatus *string `json:"experience_status,omitempty"`
	Status           *string `json:"status,omitempty"`
}

func (r *UpdateSellerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full name must not be empty"})
	}
	if r.Username != nil && !validator.IsValidUsername(*r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "username must be 3-50 characters (letters, digits, . _ -)"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if r.ExperienceStatus != nil && !validator.IsInSlice(*r.ExperienceStatus, []string{string(ExperienceNewbie), string(ExperienceTenured)}) {
		errs = append(errs, validator.ValidationError{Field: "experience_status", Message: "experience_status must be one of: newbie, tenured"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: active, inactive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	Role       *string `json:"role,omitempty"`
	Status     *string `json:"status,omitempty"`
	Experience *string `json:"experience,omitempty"`
	Search     *string `json:"search,omitempty"` // matches username or full name

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{Field: "page", Message: "page must be a positive number"})
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must be a positive number"})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must not exceed 100"})
	}
	if f.Role != nil && !validator.IsInSlice(*f.Role, []string{string(RoleAdmin), string(RoleLiveSeller)}) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of: admin, live_seller"})
	}
	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: active, inactive"})
	}
	if f.Experience != nil && !validator.IsInSlice(*f.Experience, []string{string(ExperienceNewbie), string(ExperienceTenured)}) {
		errs = append(errs, validator.ValidationError{Field: "experience", Message: "experience must be one of: newbie, tenured"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SellerResponse struct {
	ID               string  `json:"id"`
	Username         string  `json:"username"`
	Email            string  `json:"email"`
	FullName         string  `json:"full_name"`
	Role             string  `json:"role"`
	ExperienceStatus string  `json:"experience_status"`
	Status           string  `json:"status"`
	ProfileImageURL  *string `json:"profile_image_url,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type ListSellersResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Sellers    []SellerResponse `json:"sellers"`
}

type SellerStatsResponse struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	Newbie   int64 `json:"newbie"`
	Tenured  int64 `json:"tenured"`
}
