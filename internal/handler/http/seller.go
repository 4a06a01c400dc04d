package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/livehost-agency/agency-backend-go/internal/domain/user"
	"github.com/livehost-agency/agency-backend-go/internal/handler/http/response"
)

type SellerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type sellerHandlerImpl struct {
	sellerService user.SellerService
}

func NewSellerHandler(sellerService user.SellerService) SellerHandler {
	return &sellerHandlerImpl{
		sellerService: sellerService,
	}
}

// Create implements SellerHandler.
//
// Multipart form: account fields plus an optional profile image.
func (h *sellerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(12 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	req := user.CreateSellerRequest{
		FullName:         r.FormValue("full_name"),
		Username:         r.FormValue("username"),
		Email:            r.FormValue("email"),
		Password:         r.FormValue("password"),
		ExperienceStatus: r.FormValue("experience_status"),
	}

	file, fileHeader, err := r.FormFile("profile_image")
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

	result, err := h.sellerService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Seller account created", result)
}

// Get implements SellerHandler.
func (h *sellerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.sellerService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements SellerHandler.
func (h *sellerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := user.ListFilter{
		Page:  parseIntQuery(r, "page"),
		Limit: parseIntQuery(r, "limit"),
	}
	query := r.URL.Query()
	if role := query.Get("role"); role != "" {
		filter.Role = &role
	}
	if status := query.Get("status"); status != "" {
		filter.Status = &status
	}
	if experience := query.Get("experience"); experience != "" {
		filter.Experience = &experience
	}
	if search := query.Get("search"); search != "" {
		filter.Search = &search
	}

	result, err := h.sellerService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Sellers, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Update implements SellerHandler.
func (h *sellerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateSellerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.sellerService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements SellerHandler.
func (h *sellerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.sellerService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Seller account deleted", nil)
}

// Stats implements SellerHandler.
func (h *sellerHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	result, err := h.sellerService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
