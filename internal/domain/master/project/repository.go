package project

import "context"

type ProjectRepository interface {
	Create(ctx context.Context, project Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]Project, error)
	Update(ctx context.Context, req UpdateProjectRequest) error
	Delete(ctx context.Context, id string) error
}
