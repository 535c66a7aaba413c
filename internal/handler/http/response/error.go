package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/dailyreport"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/master/client"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/master/project"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/monthlyreport"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Structured approval errors carry the role or state the caller lacked
	var permErr *monthlyreport.PermissionError
	if errors.As(err, &permErr) {
		Forbidden(w, permErr.Error())
		return
	}
	var transitionErr *monthlyreport.TransitionError
	if errors.As(err, &transitionErr) {
		Conflict(w, transitionErr.Error())
		return
	}
	var revisionErr *monthlyreport.RevisionConflictError
	if errors.As(err, &revisionErr) {
		Conflict(w, revisionErr.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccountRetired):
		Forbidden(w, "Account is retired")
	case errors.Is(err, user.ErrActorRequired):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, user.ErrOwnerAccessRequired):
		Forbidden(w, "Owner access required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrCannotRetireSelf):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, employee.ErrEmployeeAlreadyRetired):
		Conflict(w, "Employee is already retired")

	// Master data errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrClientNameExists):
		Conflict(w, "Client name already exists")
	case errors.Is(err, client.ErrClientInUse):
		Conflict(w, err.Error())
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrProjectNameExists):
		Conflict(w, "Project name already exists for this client")
	case errors.Is(err, project.ErrProjectInUse):
		Conflict(w, err.Error())

	// Monthly report errors
	case errors.Is(err, monthlyreport.ErrPermissionDenied):
		Forbidden(w, err.Error())
	case errors.Is(err, monthlyreport.ErrInvalidTransition):
		Conflict(w, err.Error())
	case errors.Is(err, monthlyreport.ErrConcurrentModification):
		Conflict(w, "Report was modified by another request, reload and try again")
	case errors.Is(err, monthlyreport.ErrRemandReasonRequired):
		ValidationError(w, map[string]string{"reason": err.Error()})
	case errors.Is(err, monthlyreport.ErrUnknownEvent):
		NotFound(w, "Unknown approval action")

	// Work record and daily report errors
	case errors.Is(err, report.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, report.ErrEmployeeRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, dailyreport.ErrInvalidDate):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
