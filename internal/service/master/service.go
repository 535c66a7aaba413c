package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/master/client"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/master/project"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// MasterService manages the client and project lists work details are allocated to.
// Route middleware decides who may call the mutating operations.
type MasterService interface {
	// Client operations
	CreateClient(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error)
	GetClient(ctx context.Context, id string) (client.ClientResponse, error)
	ListClients(ctx context.Context) ([]client.ClientResponse, error)
	UpdateClient(ctx context.Context, req client.UpdateClientRequest) error
	DeleteClient(ctx context.Context, id string) error

	// Project operations
	CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error)
	GetProject(ctx context.Context, id string) (project.ProjectResponse, error)
	ListProjects(ctx context.Context, filter project.ProjectFilter) ([]project.ProjectResponse, error)
	UpdateProject(ctx context.Context, req project.UpdateProjectRequest) error
	DeleteProject(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	clientRepo  client.ClientRepository
	projectRepo project.ProjectRepository
}

func NewMasterService(
	clientRepo client.ClientRepository,
	projectRepo project.ProjectRepository,
) MasterService {
	return &masterServiceImpl{
		clientRepo:  clientRepo,
		projectRepo: projectRepo,
	}
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// ==================== CLIENT OPERATIONS ====================

func (s *masterServiceImpl) CreateClient(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	created, err := s.clientRepo.Create(ctx, client.Client{Name: req.Name})
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return client.ClientResponse{}, client.ErrClientNameExists
		}
		return client.ClientResponse{}, fmt.Errorf("failed to create client: %w", err)
	}

	return client.ToResponse(created), nil
}

func (s *masterServiceImpl) GetClient(ctx context.Context, id string) (client.ClientResponse, error) {
	entity, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.ClientResponse{}, client.ErrClientNotFound
		}
		return client.ClientResponse{}, err
	}

	return client.ToResponse(entity), nil
}

func (s *masterServiceImpl) ListClients(ctx context.Context) ([]client.ClientResponse, error) {
	entities, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]client.ClientResponse, 0, len(entities))
	for _, e := range entities {
		responses = append(responses, client.ToResponse(e))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateClient(ctx context.Context, req client.UpdateClientRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.clientRepo.Update(ctx, req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.ErrClientNotFound
		}
		if pgErrorCode(err) == pgUniqueViolation {
			return client.ErrClientNameExists
		}
		return fmt.Errorf("failed to update client: %w", err)
	}
	return nil
}

func (s *masterServiceImpl) DeleteClient(ctx context.Context, id string) error {
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.ErrClientNotFound
		}
		if pgErrorCode(err) == pgForeignKeyViolation {
			return client.ErrClientInUse
		}
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

// ==================== PROJECT OPERATIONS ====================

func (s *masterServiceImpl) CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	if err := s.ensureClient(ctx, req.ClientID); err != nil {
		return project.ProjectResponse{}, err
	}

	created, err := s.projectRepo.Create(ctx, project.Project{ClientID: req.ClientID, Name: req.Name})
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return project.ProjectResponse{}, project.ErrProjectNameExists
		}
		return project.ProjectResponse{}, fmt.Errorf("failed to create project: %w", err)
	}

	return project.ToResponse(created), nil
}

func (s *masterServiceImpl) GetProject(ctx context.Context, id string) (project.ProjectResponse, error) {
	entity, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.ProjectResponse{}, project.ErrProjectNotFound
		}
		return project.ProjectResponse{}, err
	}

	return project.ToResponse(entity), nil
}

func (s *masterServiceImpl) ListProjects(ctx context.Context, filter project.ProjectFilter) ([]project.ProjectResponse, error) {
	entities, err := s.projectRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]project.ProjectResponse, 0, len(entities))
	for _, e := range entities {
		responses = append(responses, project.ToResponse(e))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateProject(ctx context.Context, req project.UpdateProjectRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if req.ClientID != nil {
		if err := s.ensureClient(ctx, *req.ClientID); err != nil {
			return err
		}
	}

	if err := s.projectRepo.Update(ctx, req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.ErrProjectNotFound
		}
		if pgErrorCode(err) == pgUniqueViolation {
			return project.ErrProjectNameExists
		}
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

func (s *masterServiceImpl) DeleteProject(ctx context.Context, id string) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.ErrProjectNotFound
		}
		if pgErrorCode(err) == pgForeignKeyViolation {
			return project.ErrProjectInUse
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (s *masterServiceImpl) ensureClient(ctx context.Context, clientID string) error {
	if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.ErrClientNotFound
		}
		return err
	}
	return nil
}
