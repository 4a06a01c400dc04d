package attendance

import (
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/livehost-agency/agency-backend-go/internal/pkg/validator"
)

const maxPhotoSizeBytes = 10 << 20 // 10MB

// SubmitRequest is the photo-proof flow: a seller reports a finished live
// session with its sales proof screenshot. The record enters directly in
// completed status.
type SubmitRequest struct {
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	DurationHours string `json:"duration_hours"`
	SoldsQuantity string `json:"solds_quantity"`
	Notes         string `json:"notes"`

	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidTimeOfDay(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid time (HH:MM:SS)",
		})
	}
	if _, ok := validator.IsValidTimeOfDay(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid time (HH:MM:SS)",
		})
	}
	if hours, err := strconv.ParseFloat(r.DurationHours, 64); err != nil || !validator.IsValidDurationHours(hours) {
		errs = append(errs, validator.ValidationError{
			Field:   "duration_hours",
			Message: "duration_hours must be between 1 and 12 in half-hour steps",
		})
	}
	if !validator.IsNumeric(r.SoldsQuantity) {
		errs = append(errs, validator.ValidationError{
			Field:   "solds_quantity",
			Message: "solds_quantity must be a non-negative number",
		})
	}
	if len(r.Notes) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 500 characters",
		})
	}

	// The sales proof photo is mandatory and is checked before anything
	// touches storage.
	if r.FileHeader == nil || r.File == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "sales proof photo is required",
		})
	} else {
		if r.FileHeader.Size > maxPhotoSizeBytes {
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "photo must not exceed 10MB",
			})
		}
		ext := strings.ToLower(r.FileHeader.Filename[strings.LastIndex(r.FileHeader.Filename, ".")+1:])
		if !validator.IsInSlice(ext, []string{"jpg", "jpeg", "png"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "invalid file type: only jpg, jpeg, png allowed",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ScheduleRequest books a slot ahead of time (scheduling flow). The record
// enters in scheduled status and is completed through check-in/check-out.
type ScheduleRequest struct {
	AttendanceDate string `json:"attendance_date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	DurationHours  string `json:"duration_hours"`
	Notes          string `json:"notes"`
}

func (r *ScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.AttendanceDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_date",
			Message: "attendance_date must be a valid date (YYYY-MM-DD)",
		})
	}
	if _, ok := validator.IsValidTimeOfDay(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid time (HH:MM:SS)",
		})
	}
	if _, ok := validator.IsValidTimeOfDay(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid time (HH:MM:SS)",
		})
	}
	if hours, err := strconv.ParseFloat(r.DurationHours, 64); err != nil || !validator.IsValidDurationHours(hours) {
		errs = append(errs, validator.ValidationError{
			Field:   "duration_hours",
			Message: "duration_hours must be between 1 and 12 in half-hour steps",
		})
	}
	if len(r.Notes) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	Month *string `json:"month,omitempty"` // "2006-01"
	Page  int     `json:"page"`
	Limit int     `json:"limit"`
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != nil {
		if _, ok := validator.IsValidMonth(*f.Month); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be a valid month (YYYY-MM)",
			})
		}
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ReviewFilter narrows the admin photo-review listing.
type ReviewFilter struct {
	SellerID *string `json:"seller_id,omitempty"`
	Date     *string `json:"date,omitempty"`  // "2006-01-02"
	Month    *string `json:"month,omitempty"` // "2006-01"
	Page     int     `json:"page"`
	Limit    int     `json:"limit"`
}

func (f *ReviewFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be a valid date (YYYY-MM-DD)",
			})
		}
	}
	if f.Month != nil {
		if _, ok := validator.IsValidMonth(*f.Month); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be a valid month (YYYY-MM)",
			})
		}
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID             string   `json:"id"`
	SellerID       string   `json:"seller_id"`
	SellerName     *string  `json:"seller_name,omitempty"`
	AttendanceDate string   `json:"attendance_date"`
	Status         string   `json:"status"`
	SoldsQuantity  int      `json:"solds_quantity"`
	HoursWorked    *float64 `json:"hours_worked,omitempty"`
	StartTime      *string  `json:"start_time,omitempty"`
	EndTime        *string  `json:"end_time,omitempty"`
	PhotoURL       *string  `json:"photo_url,omitempty"`
	CheckInAt      *string  `json:"check_in_at,omitempty"`
	CheckOutAt     *string  `json:"check_out_at,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
	CreatedAt      string   `json:"created_at"`
}

type ListResponse struct {
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"total_pages"`
	Records    []AttendanceResponse `json:"records"`
}

type ReviewStats struct {
	SellerCount     int64   `json:"seller_count"`
	SubmissionCount int64   `json:"submission_count"`
	TotalSolds      int64   `json:"total_solds"`
	EarliestDate    *string `json:"earliest_date,omitempty"`
	LatestDate      *string `json:"latest_date,omitempty"`
}

type ReviewResponse struct {
	Stats      ReviewStats          `json:"stats"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"total_pages"`
	Records    []AttendanceResponse `json:"records"`
}
