package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/folhacerta/payroll-backend-go/internal/domain/contract"
	"github.com/folhacerta/payroll-backend-go/internal/handler/http/response"
)

type ContractHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type contractHandlerImpl struct {
	contractService contract.Service
}

func NewContractHandler(contractService contract.Service) ContractHandler {
	return &contractHandlerImpl{contractService: contractService}
}

func toContractResponse(c *contract.Contract) contract.ContractResponse {
	return contract.ContractResponse{
		ID:               c.ID,
		EmployeeName:     c.EmployeeName,
		BaseSalaryCents:  c.BaseSalaryCents,
		WeeklyHours:      c.WeeklyHours,
		CompanySizeClass: string(c.CompanySizeClass),
		IsActive:         c.IsActive,
		CreatedAt:        c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:        c.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (h *contractHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	c, err := h.contractService.Create(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Contract created", toContractResponse(c))
}

func (h *contractHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	c, err := h.contractService.GetByID(r.Context(), chi.URLParam(r, "contractID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toContractResponse(c))
}

func (h *contractHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.contractService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]contract.ContractResponse, 0, len(contracts))
	for i := range contracts {
		result = append(result, toContractResponse(&contracts[i]))
	}
	response.Success(w, result)
}
