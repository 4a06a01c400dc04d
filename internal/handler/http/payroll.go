package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/livehost-agency/agency-backend-go/internal/domain/payroll"
	"github.com/livehost-agency/agency-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	// CurrentPeriod returns the pay window covering today's business day
	CurrentPeriod(w http.ResponseWriter, r *http.Request)
	// MyEarnings returns the calling seller's earnings for the current period
	MyEarnings(w http.ResponseWriter, r *http.Request)
	// SellerEarnings returns any seller's period earnings (admin)
	SellerEarnings(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// CurrentPeriod handles GET /payroll/period
func (h *payrollHandlerImpl) CurrentPeriod(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.payrollService.CurrentPeriod(r.Context()))
}

// MyEarnings handles GET /payroll/me
func (h *payrollHandlerImpl) MyEarnings(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.MyEarnings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SellerEarnings handles GET /sellers/{id}/earnings
func (h *payrollHandlerImpl) SellerEarnings(w http.ResponseWriter, r *http.Request) {
	sellerID := chi.URLParam(r, "id")

	result, err := h.payrollService.SellerEarnings(r.Context(), sellerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
