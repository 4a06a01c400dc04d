package attendance

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/livehost-agency/agency-backend-go/internal/domain/activity"
	"github.com/livehost-agency/agency-backend-go/internal/domain/attendance"
	"github.com/livehost-agency/agency-backend-go/internal/domain/schedule"
	"github.com/livehost-agency/agency-backend-go/internal/pkg/database"
	"github.com/livehost-agency/agency-backend-go/internal/repository/postgresql"
	"github.com/livehost-agency/agency-backend-go/internal/service/file"
)

// timeNow and withTransaction are swapped out in tests: the first pins the
// business day, the second runs the closure without a live database.
var (
	timeNow         = time.Now
	withTransaction = postgresql.WithTransaction
)

// Options carries the attendance knobs from config.
type Options struct {
	SchedulingEnabled bool
	MaxAdvanceDays    int
	Location          *time.Location
}

type AttendanceServiceImpl struct {
	db   *database.DB
	opts Options
	attendance.AttendanceRepository
	schedule.TimeSlotRepository
	activity.ActivityRepository
	file.FileService
}

func NewAttendanceService(db *database.DB, opts Options, attendanceRepository attendance.AttendanceRepository, timeSlotRepository schedule.TimeSlotRepository, activityRepository activity.ActivityRepository, fileService file.FileService) attendance.AttendanceService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &AttendanceServiceImpl{
		db:                   db,
		opts:                 opts,
		AttendanceRepository: attendanceRepository,
		TimeSlotRepository:   timeSlotRepository,
		ActivityRepository:   activityRepository,
		FileService:          fileService,
	}
}

func sellerIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read claims: %w", err)
	}
	sellerID, ok := claims["user_id"].(string)
	if !ok || sellerID == "" {
		return "", fmt.Errorf("missing user_id claim")
	}
	return sellerID, nil
}

// Submit implements attendance.AttendanceService.
//
// The photo flow: validation (photo included) happens before anything is
// persisted, the slot is resolved through the deduplicating upsert, and the
// record lands directly in completed status. The unique index on the
// seller's business day is the final word on duplicates.
func (s *AttendanceServiceImpl) Submit(ctx context.Context, req attendance.SubmitRequest) (*attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sellerID, err := sellerIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	now := timeNow().In(s.opts.Location)
	day := attendance.BusinessDay(now)

	duration, _ := strconv.ParseFloat(req.DurationHours, 64)
	solds, _ := strconv.Atoi(req.SoldsQuantity)

	slot, err := s.TimeSlotRepository.GetOrCreate(ctx, &schedule.TimeSlot{
		Name:          fmt.Sprintf("%s - %s", req.StartTime, req.EndTime),
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		DurationHours: duration,
	})
	if err != nil {
		return nil, err
	}

	taken, err := s.AttendanceRepository.ExistsForSlot(ctx, sellerID, day, slot.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, attendance.ErrSlotAlreadyTaken
	}
	submitted, err := s.AttendanceRepository.HasActiveForDay(ctx, sellerID, day)
	if err != nil {
		return nil, err
	}
	if submitted {
		return nil, attendance.ErrAlreadySubmitted
	}

	photoPath, err := s.FileService.UploadSalesProof(ctx, sellerID, day, req.File, req.FileHeader.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to store sales proof: %w", err)
	}

	record := &attendance.Attendance{
		SellerID:       sellerID,
		TimeSlotID:     &slot.ID,
		AttendanceDate: day,
		Status:         attendance.StatusCompleted,
		SoldsQuantity:  solds,
		HoursWorked:    attendance.ComputeHoursWorked(slot.StartTime, slot.EndTime),
		PhotoPath:      &photoPath,
	}
	if req.Notes != "" {
		record.Notes = &req.Notes
	}

	err = withTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.AttendanceRepository.Create(txCtx, record); err != nil {
			return err
		}

		details := fmt.Sprintf("date=%s solds=%d slot=%s", day.Format("2006-01-02"), solds, slot.Name)
		return s.ActivityRepository.Create(txCtx, &activity.Log{
			UserID:  &sellerID,
			Action:  activity.ActionAttendanceSubmit,
			Details: &details,
		})
	})
	if err != nil {
		// The proof photo is orphaned if the insert lost the race; clean up
		// best effort.
		_ = s.FileService.DeleteFile(ctx, photoPath)
		return nil, err
	}

	record.SlotName = &slot.Name
	record.SlotStartTime = &slot.StartTime
	record.SlotEndTime = &slot.EndTime

	return s.toResponse(ctx, record), nil
}

// Schedule implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Schedule(ctx context.Context, req attendance.ScheduleRequest) (*attendance.AttendanceResponse, error) {
	if !s.opts.SchedulingEnabled {
		return nil, attendance.ErrSchedulingDisabled
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	sellerID, err := sellerIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	day, err := time.ParseInLocation("2006-01-02", req.AttendanceDate, s.opts.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to parse attendance date: %w", err)
	}

	today := attendance.BusinessDay(timeNow().In(s.opts.Location))
	if day.Before(today) {
		return nil, attendance.ErrPastDate
	}
	if day.After(today.AddDate(0, 0, s.opts.MaxAdvanceDays)) {
		return nil, attendance.ErrTooFarAhead
	}

	duration, _ := strconv.ParseFloat(req.DurationHours, 64)

	slot, err := s.TimeSlotRepository.GetOrCreate(ctx, &schedule.TimeSlot{
		Name:          fmt.Sprintf("%s - %s", req.StartTime, req.EndTime),
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		DurationHours: duration,
	})
	if err != nil {
		return nil, err
	}

	taken, err := s.AttendanceRepository.ExistsForSlot(ctx, sellerID, day, slot.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, attendance.ErrSlotAlreadyTaken
	}
	booked, err := s.AttendanceRepository.HasActiveForDay(ctx, sellerID, day)
	if err != nil {
		return nil, err
	}
	if booked {
		return nil, attendance.ErrAlreadySubmitted
	}

	record := &attendance.Attendance{
		SellerID:       sellerID,
		TimeSlotID:     &slot.ID,
		AttendanceDate: day,
		Status:         attendance.StatusScheduled,
	}
	if req.Notes != "" {
		record.Notes = &req.Notes
	}

	if err := s.AttendanceRepository.Create(ctx, record); err != nil {
		return nil, err
	}

	record.SlotName = &slot.Name
	record.SlotStartTime = &slot.StartTime
	record.SlotEndTime = &slot.EndTime

	return s.toResponse(ctx, record), nil
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, attendanceID string) (*attendance.AttendanceResponse, error) {
	if !s.opts.SchedulingEnabled {
		return nil, attendance.ErrSchedulingDisabled
	}

	sellerID, err := sellerIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, attendanceID)
	if err != nil {
		return nil, err
	}
	if record.SellerID != sellerID {
		return nil, attendance.ErrNotOwner
	}
	if !record.CanCheckIn() {
		return nil, attendance.ErrNotCheckInable
	}

	now := timeNow().In(s.opts.Location)
	if err := s.AttendanceRepository.UpdateCheckIn(ctx, attendanceID, now); err != nil {
		return nil, err
	}

	record.Status = attendance.StatusCheckedIn
	record.CheckInAt = &now

	return s.toResponse(ctx, record), nil
}

// CheckOut implements attendance.AttendanceService.
//
// Hours on the scheduling path come from the actual check-in/check-out
// span, not the slot's nominal window.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, attendanceID string) (*attendance.AttendanceResponse, error) {
	if !s.opts.SchedulingEnabled {
		return nil, attendance.ErrSchedulingDisabled
	}

	sellerID, err := sellerIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, attendanceID)
	if err != nil {
		return nil, err
	}
	if record.SellerID != sellerID {
		return nil, attendance.ErrNotOwner
	}
	if !record.CanCheckOut() {
		return nil, attendance.ErrNotCheckOutable
	}

	now := timeNow().In(s.opts.Location)

	var hours *float64
	if record.CheckInAt != nil {
		h := math.Round(now.Sub(*record.CheckInAt).Hours()*100) / 100
		hours = &h
	}

	err = withTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.AttendanceRepository.UpdateCheckOut(txCtx, attendanceID, now, hours); err != nil {
			return err
		}

		details := fmt.Sprintf("date=%s", record.AttendanceDate.Format("2006-01-02"))
		return s.ActivityRepository.Create(txCtx, &activity.Log{
			UserID:  &sellerID,
			Action:  activity.ActionAttendanceCheckOut,
			Details: &details,
		})
	})
	if err != nil {
		return nil, err
	}

	record.Status = attendance.StatusCompleted
	record.CheckOutAt = &now
	record.HoursWorked = hours

	return s.toResponse(ctx, record), nil
}

// Cancel implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Cancel(ctx context.Context, attendanceID string) error {
	if !s.opts.SchedulingEnabled {
		return attendance.ErrSchedulingDisabled
	}

	sellerID, err := sellerIDFromClaims(ctx)
	if err != nil {
		return err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, attendanceID)
	if err != nil {
		return err
	}
	if record.SellerID != sellerID {
		return attendance.ErrNotOwner
	}
	if !record.CanCancel() {
		return attendance.ErrNotCancellable
	}

	return withTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.AttendanceRepository.Cancel(txCtx, attendanceID); err != nil {
			return err
		}

		details := fmt.Sprintf("date=%s", record.AttendanceDate.Format("2006-01-02"))
		return s.ActivityRepository.Create(txCtx, &activity.Log{
			UserID:  &sellerID,
			Action:  activity.ActionAttendanceCancel,
			Details: &details,
		})
	})
}

// ListSlots implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListSlots(ctx context.Context) ([]schedule.TimeSlotResponse, error) {
	slots, err := s.TimeSlotRepository.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]schedule.TimeSlotResponse, 0, len(slots))
	for _, slot := range slots {
		resp = append(resp, schedule.TimeSlotResponse{
			ID:            slot.ID,
			Name:          slot.Name,
			StartTime:     slot.StartTime,
			EndTime:       slot.EndTime,
			DurationHours: slot.DurationHours,
		})
	}

	return resp, nil
}

// ListMine implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListMine(ctx context.Context, filter attendance.ListFilter) (*attendance.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	sellerID, err := sellerIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	records, total, err := s.AttendanceRepository.ListBySeller(ctx, sellerID, filter)
	if err != nil {
		return nil, err
	}

	resp := &attendance.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
		Records:    make([]attendance.AttendanceResponse, 0, len(records)),
	}
	for i := range records {
		resp.Records = append(resp.Records, *s.toResponse(ctx, &records[i]))
	}

	return resp, nil
}

// ListForReview implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListForReview(ctx context.Context, filter attendance.ReviewFilter) (*attendance.ReviewResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, total, err := s.AttendanceRepository.ListForReview(ctx, filter)
	if err != nil {
		return nil, err
	}
	stats, err := s.AttendanceRepository.GetReviewStats(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &attendance.ReviewResponse{
		Stats:      *stats,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
		Records:    make([]attendance.AttendanceResponse, 0, len(records)),
	}
	for i := range records {
		resp.Records = append(resp.Records, *s.toResponse(ctx, &records[i]))
	}

	return resp, nil
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func (s *AttendanceServiceImpl) toResponse(ctx context.Context, a *attendance.Attendance) *attendance.AttendanceResponse {
	resp := &attendance.AttendanceResponse{
		ID:             a.ID,
		SellerID:       a.SellerID,
		SellerName:     a.SellerName,
		AttendanceDate: a.AttendanceDate.Format("2006-01-02"),
		Status:         a.Status,
		SoldsQuantity:  a.SoldsQuantity,
		HoursWorked:    a.HoursWorked,
		StartTime:      a.SlotStartTime,
		EndTime:        a.SlotEndTime,
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
	}
	if a.PhotoPath != nil {
		if url, err := s.FileService.GetFileURL(ctx, *a.PhotoPath, 24*time.Hour); err == nil {
			resp.PhotoURL = &url
		}
	}
	if a.CheckInAt != nil {
		v := a.CheckInAt.Format(time.RFC3339)
		resp.CheckInAt = &v
	}
	if a.CheckOutAt != nil {
		v := a.CheckOutAt.Format(time.RFC3339)
		resp.CheckOutAt = &v
	}
	return resp
}
