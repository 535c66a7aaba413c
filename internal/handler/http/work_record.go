package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/workrecord"
	"github.com/cmlabs-hris/worktime-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkRecordHandler interface {
	GetMonthRecords(w http.ResponseWriter, r *http.Request)
	SaveMonthRecords(w http.ResponseWriter, r *http.Request)
	UpdateSpecialNotes(w http.ResponseWriter, r *http.Request)
	GetProjectSummary(w http.ResponseWriter, r *http.Request)
}

type workRecordHandlerImpl struct {
	workTimeService report.WorkTimeService
}

func NewWorkRecordHandler(workTimeService report.WorkTimeService) WorkRecordHandler {
	return &workRecordHandlerImpl{
		workTimeService: workTimeService,
	}
}

func (h *workRecordHandlerImpl) GetMonthRecords(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOrFail(w, r)
	if !ok {
		return
	}
	year, month, ok := periodParams(w, r)
	if !ok {
		return
	}

	result, err := h.workTimeService.GetMonthRecords(r.Context(), actor, chi.URLParam(r, "employeeID"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workRecordHandlerImpl) SaveMonthRecords(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOrFail(w, r)
	if !ok {
		return
	}

	var req workrecord.SaveMonthRecordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.workTimeService.SaveMonthRecords(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work records saved successfully", result)
}

func (h *workRecordHandlerImpl) UpdateSpecialNotes(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOrFail(w, r)
	if !ok {
		return
	}
	year, month, ok := periodParams(w, r)
	if !ok {
		return
	}

	var req workrecord.UpdateSpecialNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")
	req.Year = year
	req.Month = month

	result, err := h.workTimeService.UpdateSpecialNotes(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Special notes updated successfully", result)
}

func (h *workRecordHandlerImpl) GetProjectSummary(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOrFail(w, r)
	if !ok {
		return
	}
	year, month, ok := periodParams(w, r)
	if !ok {
		return
	}

	result, err := h.workTimeService.GetMonthlyProjectSummary(r.Context(), actor, chi.URLParam(r, "employeeID"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
