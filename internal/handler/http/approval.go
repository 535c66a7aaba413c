package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/monthlyreport"
	"github.com/cmlabs-hris/worktime-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ApprovalHandler interface {
	Transition(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
	ListStatuses(w http.ResponseWriter, r *http.Request)
}

type approvalHandlerImpl struct {
	approvalService monthlyreport.ApprovalService
}

func NewApprovalHandler(approvalService monthlyreport.ApprovalService) ApprovalHandler {
	return &approvalHandlerImpl{
		approvalService: approvalService,
	}
}

// Transition applies the event named by the {action} path segment.
func (h *approvalHandlerImpl) Transition(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOrFail(w, r)
	if !ok {
		return
	}
	year, month, ok := periodParams(w, r)
	if !ok {
		return
	}

	// The body is optional; approve and cancel usually send none.
	var req monthlyreport.TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")
	req.Year = year
	req.Month = month
	req.Event = monthlyreport.Event(chi.URLParam(r, "action"))

	result, err := h.approvalService.Apply(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Report status updated", result)
}

func (h *approvalHandlerImpl) GetStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOrFail(w, r)
	if !ok {
		return
	}
	year, month, ok := periodParams(w, r)
	if !ok {
		return
	}

	result, err := h.approvalService.GetStatus(r.Context(), actor, chi.URLParam(r, "employeeID"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *approvalHandlerImpl) ListStatuses(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOrFail(w, r)
	if !ok {
		return
	}
	year, month, ok := periodParams(w, r)
	if !ok {
		return
	}

	results, err := h.approvalService.ListStatuses(r.Context(), actor, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
