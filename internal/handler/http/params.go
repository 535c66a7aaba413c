package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/worktime-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/worktime-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// actorOrFail writes a 401 when the route was mounted outside AuthRequired.
func actorOrFail(w http.ResponseWriter, r *http.Request) (user.Actor, bool) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.HandleError(w, user.ErrActorRequired)
	}
	return actor, ok
}

// periodParams reads {year} and {month}. Range checks are left to the services.
func periodParams(w http.ResponseWriter, r *http.Request) (year, month int, ok bool) {
	year, yearErr := strconv.Atoi(chi.URLParam(r, "year"))
	month, monthErr := strconv.Atoi(chi.URLParam(r, "month"))
	if yearErr != nil || monthErr != nil {
		response.BadRequest(w, "Invalid year or month", nil)
		return 0, 0, false
	}
	return year, month, true
}
