package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/folhacerta/payroll-backend-go/internal/domain/timesheet"
	"github.com/folhacerta/payroll-backend-go/internal/handler/http/response"
	"github.com/folhacerta/payroll-backend-go/internal/pkg/validator"
)

type TimesheetHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.Service
}

func NewTimesheetHandler(timesheetService timesheet.Service) TimesheetHandler {
	return &timesheetHandlerImpl{timesheetService: timesheetService}
}

func toEntryResponse(e *timesheet.Entry) timesheet.EntryResponse {
	resp := timesheet.EntryResponse{
		ID:           e.ID,
		ContractID:   e.ContractID,
		Date:         e.Date.Format("2006-01-02"),
		BreakMinutes: e.BreakMinutes,
		IsHoliday:    e.IsHoliday,
		IsVacation:   e.IsVacation,
		IsLeave:      e.IsLeave,
		Description:  e.Description,
	}
	if e.StartMinutes != nil {
		start := validator.FormatClock(*e.StartMinutes)
		resp.StartTime = &start
	}
	if e.EndMinutes != nil {
		end := validator.FormatClock(*e.EndMinutes)
		resp.EndTime = &end
	}
	return resp
}

func (h *timesheetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req timesheet.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	e, err := h.timesheetService.Create(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Timesheet entry created", toEntryResponse(e))
}

func (h *timesheetHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	contractID := chi.URLParam(r, "contractID")
	year, month, ok := periodParams(w, r)
	if !ok {
		return
	}

	entries, err := h.timesheetService.ListByContractMonth(r.Context(), contractID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]timesheet.EntryResponse, 0, len(entries))
	for i := range entries {
		result = append(result, toEntryResponse(&entries[i]))
	}
	response.Success(w, result)
}

func (h *timesheetHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.timesheetService.Delete(r.Context(), chi.URLParam(r, "entryID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet entry deleted", nil)
}
