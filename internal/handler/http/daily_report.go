package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/dailyreport"
	"github.com/cmlabs-hris/worktime-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DailyReportHandler interface {
	GetDailyReport(w http.ResponseWriter, r *http.Request)
	SaveDailyReport(w http.ResponseWriter, r *http.Request)
}

type dailyReportHandlerImpl struct {
	dailyReportService dailyreport.DailyReportService
}

func NewDailyReportHandler(dailyReportService dailyreport.DailyReportService) DailyReportHandler {
	return &dailyReportHandlerImpl{
		dailyReportService: dailyReportService,
	}
}

func (h *dailyReportHandlerImpl) GetDailyReport(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOrFail(w, r)
	if !ok {
		return
	}

	result, err := h.dailyReportService.GetDailyReport(r.Context(), actor, chi.URLParam(r, "employeeID"), chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *dailyReportHandlerImpl) SaveDailyReport(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOrFail(w, r)
	if !ok {
		return
	}

	var req dailyreport.SaveDailyReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.dailyReportService.SaveDailyReport(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily report saved successfully", result)
}
