package worktime

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/master/client"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/master/project"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/workrecord"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

// DetailChecker verifies the client and project references of work details against
// master data. Lookups are cached for the lifetime of the checker.
type DetailChecker struct {
	clientRepo  client.ClientRepository
	projectRepo project.ProjectRepository
	clients     map[string]bool
	projects    map[string]project.Project
}

func NewDetailChecker(clientRepo client.ClientRepository, projectRepo project.ProjectRepository) *DetailChecker {
	return &DetailChecker{
		clientRepo:  clientRepo,
		projectRepo: projectRepo,
		clients:     make(map[string]bool),
		projects:    make(map[string]project.Project),
	}
}

// Check adds a validation error under prefix for every unknown client or project and
// for every project booked under a client it does not belong to. The returned error is
// reserved for storage failures.
func (c *DetailChecker) Check(ctx context.Context, prefix string, details []workrecord.WorkDetail, errs *validator.ValidationErrors) error {
	for j, d := range details {
		field := fmt.Sprintf("details[%d]", j)
		if prefix != "" {
			field = prefix + "." + field
		}

		if d.ClientID != "" {
			known, err := c.clientExists(ctx, d.ClientID)
			if err != nil {
				return err
			}
			if !known {
				errs.Add(field+".client_id", client.ErrClientNotFound.Error())
				continue
			}
		}

		if d.ProjectID == "" {
			continue
		}
		p, err := c.project(ctx, d.ProjectID)
		if err != nil {
			return err
		}
		if p.ID == "" {
			errs.Add(field+".project_id", project.ErrProjectNotFound.Error())
		} else if p.ClientID != d.ClientID {
			errs.Add(field+".project_id", workrecord.ErrProjectClientMismatch.Error())
		}
	}
	return nil
}

func (c *DetailChecker) clientExists(ctx context.Context, id string) (bool, error) {
	if known, ok := c.clients[id]; ok {
		return known, nil
	}
	_, err := c.clientRepo.GetByID(ctx, id)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("failed to get client: %w", err)
	}
	c.clients[id] = err == nil
	return err == nil, nil
}

// project returns the zero Project for an unknown id.
func (c *DetailChecker) project(ctx context.Context, id string) (project.Project, error) {
	if p, ok := c.projects[id]; ok {
		return p, nil
	}
	p, err := c.projectRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, fmt.Errorf("failed to get project: %w", err)
		}
		p = project.Project{}
	}
	c.projects[id] = p
	return p, nil
}
