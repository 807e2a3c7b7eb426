package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/folhacerta/payroll-backend-go/internal/domain/policy"
	"github.com/folhacerta/payroll-backend-go/internal/handler/http/response"
	"github.com/folhacerta/payroll-backend-go/internal/pkg/validator"
)

type PolicyHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetActive(w http.ResponseWriter, r *http.Request)
	ListByContract(w http.ResponseWriter, r *http.Request)
}

type policyHandlerImpl struct {
	policyService policy.Service
}

func NewPolicyHandler(policyService policy.Service) PolicyHandler {
	return &policyHandlerImpl{policyService: policyService}
}

func toPolicyResponse(p *policy.Policy) policy.PolicyResponse {
	return policy.PolicyResponse{
		ID:                        p.ID,
		ContractID:                p.ContractID,
		Name:                      p.Name,
		ThresholdHours:            p.ThresholdHours,
		FirstHourMultiplier:       p.FirstHourMultiplier.String(),
		SubsequentHoursMultiplier: p.SubsequentHoursMultiplier.String(),
		WeekendMultiplier:         p.WeekendMultiplier.String(),
		HolidayMultiplier:         p.HolidayMultiplier.String(),
		NightMultiplier:           p.NightMultiplier.String(),
		NightStart:                validator.FormatClock(p.NightStartMinutes),
		NightEnd:                  validator.FormatClock(p.NightEndMinutes),
		RoundingMinutes:           p.RoundingMinutes,
		DailyLimitHours:           p.DailyLimitHours,
		WeeklyLimitHours:          p.WeeklyLimitHours,
		AnnualLimitHours:          p.AnnualLimitHours,
		IsActive:                  p.IsActive,
	}
}

func (h *policyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req policy.CreatePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	p, err := h.policyService.Create(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime policy created", toPolicyResponse(p))
}

func (h *policyHandlerImpl) GetActive(w http.ResponseWriter, r *http.Request) {
	p, err := h.policyService.GetActiveByContract(r.Context(), chi.URLParam(r, "contractID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toPolicyResponse(p))
}

func (h *policyHandlerImpl) ListByContract(w http.ResponseWriter, r *http.Request) {
	policies, err := h.policyService.ListByContract(r.Context(), chi.URLParam(r, "contractID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]policy.PolicyResponse, 0, len(policies))
	for i := range policies {
		result = append(result, toPolicyResponse(&policies[i]))
	}
	response.Success(w, result)
}
