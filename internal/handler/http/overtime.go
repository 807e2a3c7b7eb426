package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/folhacerta/payroll-backend-go/internal/domain/overtime"
	"github.com/folhacerta/payroll-backend-go/internal/handler/http/response"
)

type OvertimeHandler interface {
	Breakdown(w http.ResponseWriter, r *http.Request)
	WeeklySummaries(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtime.Service
}

func NewOvertimeHandler(overtimeService overtime.Service) OvertimeHandler {
	return &overtimeHandlerImpl{overtimeService: overtimeService}
}

// periodParams reads the year and month query parameters shared by the
// period-scoped endpoints. It writes the error response itself.
func periodParams(w http.ResponseWriter, r *http.Request) (year, month int, ok bool) {
	var err error
	year, err = strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "Invalid or missing year parameter", nil)
		return 0, 0, false
	}
	month, err = strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(w, "Invalid or missing month parameter", nil)
		return 0, 0, false
	}
	return year, month, true
}

func (h *overtimeHandlerImpl) Breakdown(w http.ResponseWriter, r *http.Request) {
	contractID := chi.URLParam(r, "contractID")
	year, month, ok := periodParams(w, r)
	if !ok {
		return
	}

	b, err := h.overtimeService.BreakdownForPeriod(r.Context(), contractID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overtime.ToBreakdownResponse(b))
}

func (h *overtimeHandlerImpl) WeeklySummaries(w http.ResponseWriter, r *http.Request) {
	contractID := chi.URLParam(r, "contractID")
	year, month, ok := periodParams(w, r)
	if !ok {
		return
	}

	summaries, err := h.overtimeService.WeeklySummaries(r.Context(), contractID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overtime.ToWeeklySummaryResponses(summaries))
}
