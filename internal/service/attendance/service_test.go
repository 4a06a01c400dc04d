package attendance

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livehost-agency/agency-backend-go/internal/domain/activity"
	"github.com/livehost-agency/agency-backend-go/internal/domain/attendance"
	"github.com/livehost-agency/agency-backend-go/internal/domain/schedule"
	"github.com/livehost-agency/agency-backend-go/internal/pkg/database"
	"github.com/livehost-agency/agency-backend-go/internal/pkg/validator"
)

// ---- fakes ----

type fakeAttendanceRepo struct {
	created    []*attendance.Attendance
	records    map[string]*attendance.Attendance
	activeDays map[string]bool // sellerID|date
	takenSlots map[string]bool // sellerID|date|slotID
	createErr  error
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		records:    map[string]*attendance.Attendance{},
		activeDays: map[string]bool{},
		takenSlots: map[string]bool{},
	}
}

func dayKey(sellerID string, date time.Time) string {
	return sellerID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att *attendance.Attendance) error {
	if f.createErr != nil {
		return f.createErr
	}
	att.ID = fmt.Sprintf("att-%d", len(f.created)+1)
	att.CreatedAt = time.Now()
	att.UpdatedAt = att.CreatedAt
	f.created = append(f.created, att)
	f.records[att.ID] = att
	f.activeDays[dayKey(att.SellerID, att.AttendanceDate)] = true
	if att.TimeSlotID != nil {
		f.takenSlots[dayKey(att.SellerID, att.AttendanceDate)+"|"+*att.TimeSlotID] = true
	}
	return nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (*attendance.Attendance, error) {
	att, ok := f.records[id]
	if !ok {
		return nil, attendance.ErrAttendanceNotFound
	}
	cp := *att
	return &cp, nil
}

func (f *fakeAttendanceRepo) HasActiveForDay(ctx context.Context, sellerID string, date time.Time) (bool, error) {
	return f.activeDays[dayKey(sellerID, date)], nil
}

func (f *fakeAttendanceRepo) ExistsForSlot(ctx context.Context, sellerID string, date time.Time, slotID string) (bool, error) {
	return f.takenSlots[dayKey(sellerID, date)+"|"+slotID], nil
}

func (f *fakeAttendanceRepo) UpdateCheckIn(ctx context.Context, id string, at time.Time) error {
	att := f.records[id]
	att.Status = attendance.StatusCheckedIn
	att.CheckInAt = &at
	return nil
}

func (f *fakeAttendanceRepo) UpdateCheckOut(ctx context.Context, id string, at time.Time, hours *float64) error {
	att := f.records[id]
	att.Status = attendance.StatusCompleted
	att.CheckOutAt = &at
	att.HoursWorked = hours
	return nil
}

func (f *fakeAttendanceRepo) Cancel(ctx context.Context, id string) error {
	att := f.records[id]
	att.Status = attendance.StatusCancelled
	delete(f.activeDays, dayKey(att.SellerID, att.AttendanceDate))
	if att.TimeSlotID != nil {
		delete(f.takenSlots, dayKey(att.SellerID, att.AttendanceDate)+"|"+*att.TimeSlotID)
	}
	return nil
}

func (f *fakeAttendanceRepo) CancelStaleScheduled(ctx context.Context, before time.Time) (int64, error) {
	var n int64
	for _, rec := range f.records {
		if rec.Status == attendance.StatusScheduled && rec.AttendanceDate.Before(before) {
			rec.Status = attendance.StatusCancelled
			n++
		}
	}
	return n, nil
}

func (f *fakeAttendanceRepo) ListBySeller(ctx context.Context, sellerID string, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		if att.SellerID == sellerID {
			out = append(out, *att)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) ListForReview(ctx context.Context, filter attendance.ReviewFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		if att.Status == attendance.StatusCompleted || att.Status == attendance.StatusCheckedIn {
			out = append(out, *att)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) GetReviewStats(ctx context.Context, filter attendance.ReviewFilter) (*attendance.ReviewStats, error) {
	return &attendance.ReviewStats{}, nil
}

func (f *fakeAttendanceRepo) ListPhotoPathsBySeller(ctx context.Context, sellerID string) ([]string, error) {
	return nil, nil
}

type fakeSlotRepo struct {
	slots map[string]*schedule.TimeSlot
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: map[string]*schedule.TimeSlot{}}
}

func (f *fakeSlotRepo) GetOrCreate(ctx context.Context, slot *schedule.TimeSlot) (*schedule.TimeSlot, error) {
	key := fmt.Sprintf("%s|%s|%.2f", slot.StartTime, slot.EndTime, slot.DurationHours)
	if existing, ok := f.slots[key]; ok {
		return existing, nil
	}
	cp := *slot
	cp.ID = fmt.Sprintf("slot-%d", len(f.slots)+1)
	cp.IsActive = true
	f.slots[key] = &cp
	return &cp, nil
}

func (f *fakeSlotRepo) GetByID(ctx context.Context, id string) (*schedule.TimeSlot, error) {
	for _, slot := range f.slots {
		if slot.ID == id {
			return slot, nil
		}
	}
	return nil, schedule.ErrTimeSlotNotFound
}

func (f *fakeSlotRepo) ListActive(ctx context.Context) ([]schedule.TimeSlot, error) {
	var out []schedule.TimeSlot
	for _, slot := range f.slots {
		out = append(out, *slot)
	}
	return out, nil
}

type fakeActivityRepo struct {
	logs []activity.Log
}

func (f *fakeActivityRepo) Create(ctx context.Context, log *activity.Log) error {
	f.logs = append(f.logs, *log)
	return nil
}

func (f *fakeActivityRepo) ListRecent(ctx context.Context, limit int) ([]activity.Log, error) {
	return f.logs, nil
}

type fakeFileService struct {
	uploads []string
	deletes []string
}

func (f *fakeFileService) UploadSalesProof(ctx context.Context, sellerID string, date time.Time, file io.Reader, filename string) (string, error) {
	path := fmt.Sprintf("sales-proof/%s/%s-%d.jpg", date.Format("2006-01-02"), sellerID, len(f.uploads))
	f.uploads = append(f.uploads, path)
	return path, nil
}

func (f *fakeFileService) UploadProfileImage(ctx context.Context, userID string, file io.Reader, filename string) (string, error) {
	path := "profiles/" + userID
	f.uploads = append(f.uploads, path)
	return path, nil
}

func (f *fakeFileService) DeleteFile(ctx context.Context, path string) error {
	f.deletes = append(f.deletes, path)
	return nil
}

func (f *fakeFileService) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "http://files.local/" + path, nil
}

// ---- helpers ----

type nopFile struct{ *bytes.Reader }

func (nopFile) Close() error { return nil }

func photoRequest(start, end, duration, solds string) attendance.SubmitRequest {
	return attendance.SubmitRequest{
		StartTime:     start,
		EndTime:       end,
		DurationHours: duration,
		SoldsQuantity: solds,
		File:          nopFile{bytes.NewReader([]byte("jpeg-bytes"))},
		FileHeader:    &multipart.FileHeader{Filename: "proof.jpg", Size: 2048},
	}
}

var testTokenAuth = jwtauth.New("HS256", []byte("test-secret"), nil)

func sellerContext(t *testing.T, sellerID string) context.Context {
	t.Helper()
	token, _, err := testTokenAuth.Encode(map[string]interface{}{
		"user_id": sellerID,
		"role":    "live_seller",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fixture struct {
	svc      attendance.AttendanceService
	repo     *fakeAttendanceRepo
	slots    *fakeSlotRepo
	activity *fakeActivityRepo
	files    *fakeFileService
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()

	prevTx := withTransaction
	withTransaction = func(ctx context.Context, db *database.DB, fn func(tx pgx.Tx) error) error {
		return fn(nil)
	}
	t.Cleanup(func() { withTransaction = prevTx })

	if opts.Location == nil {
		loc, err := time.LoadLocation("Asia/Manila")
		require.NoError(t, err)
		opts.Location = loc
	}
	if opts.MaxAdvanceDays == 0 {
		opts.MaxAdvanceDays = 30
	}

	f := &fixture{
		repo:     newFakeAttendanceRepo(),
		slots:    newFakeSlotRepo(),
		activity: &fakeActivityRepo{},
		files:    &fakeFileService{},
	}
	f.svc = NewAttendanceService(nil, opts, f.repo, f.slots, f.activity, f.files)
	return f
}

func pinTime(t *testing.T, at time.Time) {
	t.Helper()
	prev := timeNow
	timeNow = func() time.Time { return at }
	t.Cleanup(func() { timeNow = prev })
}

// ---- tests ----

func TestSubmit_Success(t *testing.T) {
	f := newFixture(t, Options{})
	loc := time.FixedZone("PHT", 8*3600)
	pinTime(t, time.Date(2025, 3, 15, 22, 30, 0, 0, loc))

	resp, err := f.svc.Submit(sellerContext(t, "seller-1"), photoRequest("22:00:00", "02:00:00", "4", "12"))

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusCompleted, resp.Status)
	assert.Equal(t, "2025-03-15", resp.AttendanceDate)
	assert.Equal(t, 12, resp.SoldsQuantity)
	if assert.NotNil(t, resp.HoursWorked) {
		assert.InDelta(t, 4.0, *resp.HoursWorked, 0.001)
	}
	assert.NotNil(t, resp.PhotoURL)

	require.Len(t, f.repo.created, 1)
	assert.Len(t, f.files.uploads, 1)
	require.Len(t, f.activity.logs, 1)
	assert.Equal(t, activity.ActionAttendanceSubmit, f.activity.logs[0].Action)
}

func TestSubmit_BeforeCutoverFilesUnderYesterday(t *testing.T) {
	f := newFixture(t, Options{})
	loc := time.FixedZone("PHT", 8*3600)
	pinTime(t, time.Date(2025, 3, 15, 5, 59, 0, 0, loc))

	resp, err := f.svc.Submit(sellerContext(t, "seller-1"), photoRequest("22:00:00", "02:00:00", "4", "3"))

	require.NoError(t, err)
	assert.Equal(t, "2025-03-14", resp.AttendanceDate)
}

func TestSubmit_AtCutoverFilesUnderToday(t *testing.T) {
	f := newFixture(t, Options{})
	loc := time.FixedZone("PHT", 8*3600)
	pinTime(t, time.Date(2025, 3, 15, 6, 0, 0, 0, loc))

	resp, err := f.svc.Submit(sellerContext(t, "seller-1"), photoRequest("08:00:00", "11:00:00", "3", "0"))

	require.NoError(t, err)
	assert.Equal(t, "2025-03-15", resp.AttendanceDate)
	if assert.NotNil(t, resp.HoursWorked) {
		assert.InDelta(t, 3.0, *resp.HoursWorked, 0.001)
	}
}

func TestSubmit_MissingPhotoRejectedBeforePersistence(t *testing.T) {
	f := newFixture(t, Options{})
	pinTime(t, time.Date(2025, 3, 15, 20, 0, 0, 0, time.UTC))

	req := photoRequest("20:00:00", "23:00:00", "3", "5")
	req.File = nil
	req.FileHeader = nil

	_, err := f.svc.Submit(sellerContext(t, "seller-1"), req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "photo")
	assert.Empty(t, f.repo.created)
	assert.Empty(t, f.files.uploads)
}

func TestSubmit_SecondSubmissionSameDayConflicts(t *testing.T) {
	f := newFixture(t, Options{})
	loc := time.FixedZone("PHT", 8*3600)
	pinTime(t, time.Date(2025, 3, 15, 21, 0, 0, 0, loc))
	ctx := sellerContext(t, "seller-1")

	_, err := f.svc.Submit(ctx, photoRequest("10:00:00", "14:00:00", "4", "7"))
	require.NoError(t, err)

	// A different slot makes no difference: the day is taken.
	_, err = f.svc.Submit(ctx, photoRequest("18:00:00", "22:00:00", "4", "2"))
	assert.ErrorIs(t, err, attendance.ErrAlreadySubmitted)
	assert.Len(t, f.repo.created, 1)
	assert.Len(t, f.files.uploads, 1)
}

func TestSubmit_SameSlotTakenConflicts(t *testing.T) {
	f := newFixture(t, Options{})
	loc := time.FixedZone("PHT", 8*3600)
	pinTime(t, time.Date(2025, 3, 15, 21, 0, 0, 0, loc))
	ctx := sellerContext(t, "seller-1")

	_, err := f.svc.Submit(ctx, photoRequest("10:00:00", "14:00:00", "4", "7"))
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, photoRequest("10:00:00", "14:00:00", "4", "7"))
	assert.ErrorIs(t, err, attendance.ErrSlotAlreadyTaken)
}

func TestSubmit_StorageConflictCleansUpPhoto(t *testing.T) {
	// Two requests race past the pre-checks; the unique index stops the
	// second insert and the orphaned photo is removed.
	f := newFixture(t, Options{})
	pinTime(t, time.Date(2025, 3, 15, 20, 0, 0, 0, time.UTC))
	f.repo.createErr = attendance.ErrAlreadySubmitted

	_, err := f.svc.Submit(sellerContext(t, "seller-1"), photoRequest("10:00:00", "14:00:00", "4", "1"))

	assert.ErrorIs(t, err, attendance.ErrAlreadySubmitted)
	require.Len(t, f.files.uploads, 1)
	require.Len(t, f.files.deletes, 1)
	assert.Equal(t, f.files.uploads[0], f.files.deletes[0])
}

func TestSubmit_SlotDeduplicated(t *testing.T) {
	f := newFixture(t, Options{})
	loc := time.FixedZone("PHT", 8*3600)
	pinTime(t, time.Date(2025, 3, 15, 21, 0, 0, 0, loc))

	_, err := f.svc.Submit(sellerContext(t, "seller-1"), photoRequest("20:00:00", "23:00:00", "3", "4"))
	require.NoError(t, err)
	_, err = f.svc.Submit(sellerContext(t, "seller-2"), photoRequest("20:00:00", "23:00:00", "3", "9"))
	require.NoError(t, err)

	assert.Len(t, f.slots.slots, 1)
	require.Len(t, f.repo.created, 2)
	assert.Equal(t, *f.repo.created[0].TimeSlotID, *f.repo.created[1].TimeSlotID)
}

func TestSchedule_DisabledByConfig(t *testing.T) {
	f := newFixture(t, Options{SchedulingEnabled: false})

	_, err := f.svc.Schedule(sellerContext(t, "seller-1"), attendance.ScheduleRequest{
		AttendanceDate: "2025-03-20",
		StartTime:      "20:00:00",
		EndTime:        "23:00:00",
		DurationHours:  "3",
	})

	assert.ErrorIs(t, err, attendance.ErrSchedulingDisabled)
}

func TestSchedule_Window(t *testing.T) {
	f := newFixture(t, Options{SchedulingEnabled: true})
	loc := time.FixedZone("PHT", 8*3600)
	pinTime(t, time.Date(2025, 3, 15, 12, 0, 0, 0, loc))
	ctx := sellerContext(t, "seller-1")

	base := attendance.ScheduleRequest{
		StartTime:     "20:00:00",
		EndTime:       "23:00:00",
		DurationHours: "3",
	}

	past := base
	past.AttendanceDate = "2025-03-14"
	_, err := f.svc.Schedule(ctx, past)
	assert.ErrorIs(t, err, attendance.ErrPastDate)

	tooFar := base
	tooFar.AttendanceDate = "2025-04-20"
	_, err = f.svc.Schedule(ctx, tooFar)
	assert.ErrorIs(t, err, attendance.ErrTooFarAhead)

	ok := base
	ok.AttendanceDate = "2025-03-20"
	resp, err := f.svc.Schedule(ctx, ok)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusScheduled, resp.Status)
	assert.Nil(t, resp.HoursWorked)
}

func TestCheckInCheckOutFlow(t *testing.T) {
	f := newFixture(t, Options{SchedulingEnabled: true})
	loc := time.FixedZone("PHT", 8*3600)
	pinTime(t, time.Date(2025, 3, 15, 12, 0, 0, 0, loc))
	ctx := sellerContext(t, "seller-1")

	scheduled, err := f.svc.Schedule(ctx, attendance.ScheduleRequest{
		AttendanceDate: "2025-03-15",
		StartTime:      "20:00:00",
		EndTime:        "23:00:00",
		DurationHours:  "3",
	})
	require.NoError(t, err)

	// Check out before checking in is rejected.
	_, err = f.svc.CheckOut(ctx, scheduled.ID)
	assert.ErrorIs(t, err, attendance.ErrNotCheckOutable)

	pinTime(t, time.Date(2025, 3, 15, 20, 0, 0, 0, loc))
	checkedIn, err := f.svc.CheckIn(ctx, scheduled.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusCheckedIn, checkedIn.Status)

	// Double check-in is rejected.
	_, err = f.svc.CheckIn(ctx, scheduled.ID)
	assert.ErrorIs(t, err, attendance.ErrNotCheckInable)

	pinTime(t, time.Date(2025, 3, 15, 23, 30, 0, 0, loc))
	completed, err := f.svc.CheckOut(ctx, scheduled.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusCompleted, completed.Status)
	if assert.NotNil(t, completed.HoursWorked) {
		assert.InDelta(t, 3.5, *completed.HoursWorked, 0.001)
	}
}

func TestCancel_OnlyScheduledAndOnlyOwner(t *testing.T) {
	f := newFixture(t, Options{SchedulingEnabled: true})
	loc := time.FixedZone("PHT", 8*3600)
	pinTime(t, time.Date(2025, 3, 15, 12, 0, 0, 0, loc))
	ctx := sellerContext(t, "seller-1")

	scheduled, err := f.svc.Schedule(ctx, attendance.ScheduleRequest{
		AttendanceDate: "2025-03-16",
		StartTime:      "20:00:00",
		EndTime:        "23:00:00",
		DurationHours:  "3",
	})
	require.NoError(t, err)

	err = f.svc.Cancel(sellerContext(t, "seller-2"), scheduled.ID)
	assert.ErrorIs(t, err, attendance.ErrNotOwner)

	err = f.svc.Cancel(ctx, scheduled.ID)
	require.NoError(t, err)

	// Cancelled records release the day.
	taken, err := f.repo.HasActiveForDay(context.Background(), "seller-1", time.Date(2025, 3, 16, 0, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.False(t, taken)

	// Completed records cannot be cancelled.
	submitted, err := f.svc.Submit(ctx, photoRequest("10:00:00", "14:00:00", "4", "2"))
	require.NoError(t, err)
	err = f.svc.Cancel(ctx, submitted.ID)
	assert.ErrorIs(t, err, attendance.ErrNotCancellable)
}
