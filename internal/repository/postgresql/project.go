package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/master/project"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

const projectColumns = `p.id, p.client_id, c.name, p.name, p.created_at, p.updated_at`

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID,
		&p.ClientID,
		&p.ClientName,
		&p.Name,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// Create implements project.ProjectRepository.
func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to generate project id: %w", err)
	}

	query := `
		WITH inserted AS (
			INSERT INTO projects (id, client_id, name, created_at, updated_at)
			VALUES ($1, $2, $3, NOW(), NOW())
			RETURNING id, client_id, name, created_at, updated_at
		)
		SELECT ` + projectColumns + `
		FROM inserted p
		JOIN clients c ON c.id = p.client_id
	`

	result, err := scanProject(q.QueryRow(ctx, query, id, p.ClientID, p.Name))
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return result, nil
}

// GetByID implements project.ProjectRepository.
func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + projectColumns + `
		FROM projects p
		JOIN clients c ON c.id = p.client_id
		WHERE p.id = $1
	`

	result, err := scanProject(q.QueryRow(ctx, query, id))
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}

	return result, nil
}

// List implements project.ProjectRepository.
func (r *projectRepositoryImpl) List(ctx context.Context, filter project.ProjectFilter) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + projectColumns + `
		FROM projects p
		JOIN clients c ON c.id = p.client_id
		WHERE ($1::uuid IS NULL OR p.client_id = $1::uuid)
		ORDER BY c.name ASC, p.name ASC
	`

	rows, err := q.Query(ctx, query, filter.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return projects, nil
}

// Update implements project.ProjectRepository.
func (r *projectRepositoryImpl) Update(ctx context.Context, req project.UpdateProjectRequest) error {
	q := GetQuerier(ctx, r.db)

	// Build dynamic update query
	query := `UPDATE projects SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.ClientID != nil {
		query += fmt.Sprintf(", client_id = $%d", argIdx)
		args = append(args, *req.ClientID)
		argIdx++
	}

	if req.Name != nil {
		query += fmt.Sprintf(", name = $%d", argIdx)
		args = append(args, *req.Name)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete implements project.ProjectRepository.
func (r *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
