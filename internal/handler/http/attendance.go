package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/livehost-agency/agency-backend-go/internal/domain/attendance"
	"github.com/livehost-agency/agency-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Schedule(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	ListSlots(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListForReview(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Submit implements AttendanceHandler.
//
// Multipart form: slot fields plus the mandatory sales proof photo.
func (h *attendanceHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 12MB: 10MB photo plus form fields)
	if err := r.ParseMultipartForm(12 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	req := attendance.SubmitRequest{
		StartTime:     r.FormValue("start_time"),
		EndTime:       r.FormValue("end_time"),
		DurationHours: r.FormValue("duration_hours"),
		SoldsQuantity: r.FormValue("solds_quantity"),
		Notes:         r.FormValue("notes"),
	}

	file, fileHeader, err := r.FormFile("photo")
	if err != nil && err != http.ErrMissingFile {
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	if err == nil {
		defer file.Close()
		req.File = file
		req.FileHeader = fileHeader
	}
	// A missing photo falls through to Validate so the client gets a field
	// error instead of a bare 400.

	result, err := h.attendanceService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance submitted", result)
}

// Schedule implements AttendanceHandler.
func (h *attendanceHandlerImpl) Schedule(w http.ResponseWriter, r *http.Request) {
	req := attendance.ScheduleRequest{
		AttendanceDate: r.FormValue("attendance_date"),
		StartTime:      r.FormValue("start_time"),
		EndTime:        r.FormValue("end_time"),
		DurationHours:  r.FormValue("duration_hours"),
		Notes:          r.FormValue("notes"),
	}

	result, err := h.attendanceService.Schedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance scheduled", result)
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.attendanceService.CheckIn(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.attendanceService.CheckOut(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Cancel implements AttendanceHandler.
func (h *attendanceHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.attendanceService.Cancel(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance cancelled", nil)
}

// ListSlots implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListSlots(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListSlots(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMine implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ListFilter{
		Page:  parseIntQuery(r, "page"),
		Limit: parseIntQuery(r, "limit"),
	}
	if month := r.URL.Query().Get("month"); month != "" {
		filter.Month = &month
	}

	result, err := h.attendanceService.ListMine(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// ListForReview implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListForReview(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ReviewFilter{
		Page:  parseIntQuery(r, "page"),
		Limit: parseIntQuery(r, "limit"),
	}
	query := r.URL.Query()
	if sellerID := query.Get("seller_id"); sellerID != "" {
		filter.SellerID = &sellerID
	}
	if date := query.Get("date"); date != "" {
		filter.Date = &date
	}
	if month := query.Get("month"); month != "" {
		filter.Month = &month
	}

	result, err := h.attendanceService.ListForReview(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func parseIntQuery(r *http.Request, key string) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
