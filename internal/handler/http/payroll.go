package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/folhacerta/payroll-backend-go/internal/domain/payroll"
	"github.com/folhacerta/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	// Calculation
	Calculate(w http.ResponseWriter, r *http.Request)
	CalculateAndSave(w http.ResponseWriter, r *http.Request)
	ListRuns(w http.ResponseWriter, r *http.Request)

	// Configuration
	SetDeductionConfig(w http.ResponseWriter, r *http.Request)
	SetMealAllowanceConfig(w http.ResponseWriter, r *http.Request)
	AddMileageTrip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== CALCULATION ==========

func (h *payrollHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req payroll.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.Calculate(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.ToResultResponse(result))
}

func (h *payrollHandlerImpl) CalculateAndSave(w http.ResponseWriter, r *http.Request) {
	var req payroll.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.CalculateAndSave(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll run saved", payroll.ToResultResponse(result))
}

func (h *payrollHandlerImpl) ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.payrollService.ListRuns(r.Context(), chi.URLParam(r, "contractID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.ToRunResponses(runs))
}

// ========== CONFIGURATION ==========

func (h *payrollHandlerImpl) SetDeductionConfig(w http.ResponseWriter, r *http.Request) {
	var req payroll.DeductionConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	cfg, err := h.payrollService.SetDeductionConfig(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction config saved", cfg)
}

func (h *payrollHandlerImpl) SetMealAllowanceConfig(w http.ResponseWriter, r *http.Request) {
	var req payroll.MealAllowanceConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	cfg, err := h.payrollService.SetMealAllowanceConfig(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Meal allowance config saved", cfg)
}

func (h *payrollHandlerImpl) AddMileageTrip(w http.ResponseWriter, r *http.Request) {
	var req payroll.MileageTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	trip, err := h.payrollService.AddMileageTrip(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Mileage trip recorded", trip)
}
