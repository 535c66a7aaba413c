package monthlyreport

import (
	"context"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/user"
)

type ApprovalService interface {
	Approve(ctx context.Context, actor user.Actor, req TransitionRequest) (StatusResponse, error)
	CancelApproval(ctx context.Context, actor user.Actor, req TransitionRequest) (StatusResponse, error)
	Submit(ctx context.Context, actor user.Actor, req TransitionRequest) (StatusResponse, error)
	ManagerApprove(ctx context.Context, actor user.Actor, req TransitionRequest) (StatusResponse, error)
	Finalize(ctx context.Context, actor user.Actor, req TransitionRequest) (StatusResponse, error)
	Remand(ctx context.Context, actor user.Actor, req TransitionRequest) (StatusResponse, error)
	// Apply runs any event; the named methods are shorthands for it.
	Apply(ctx context.Context, actor user.Actor, req TransitionRequest) (StatusResponse, error)
	GetStatus(ctx context.Context, actor user.Actor, employeeID string, year, month int) (StatusResponse, error)
	ListStatuses(ctx context.Context, actor user.Actor, year, month int) ([]StatusResponse, error)
}
