package http

import (
	"net/http"

	"github.com/livehost-agency/agency-backend-go/internal/domain/dashboard"
	"github.com/livehost-agency/agency-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// Admin returns agency-wide stats, the 30-day leaderboard and recent activity
	Admin(w http.ResponseWriter, r *http.Request)
	// Me returns the calling seller's pay-period summary and leaderboard
	Me(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// Admin handles GET /dashboard/admin
func (h *dashboardHandlerImpl) Admin(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.AdminDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Me handles GET /dashboard/me
func (h *dashboardHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.SellerDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
