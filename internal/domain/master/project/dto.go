package project

import (
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
)

// ProjectResponse represents the response structure for a project.
type ProjectResponse struct {
	ID         string `json:"id"`
	ClientID   string `json:"client_id"`
	ClientName string `json:"client_name,omitempty"`
	Name       string `json:"name"`
}

// CreateProjectRequest represents the request structure for creating a project.
type CreateProjectRequest struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	// ClientID
	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		})
	}

	// Name
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateProjectRequest represents the request structure for updating a project.
type UpdateProjectRequest struct {
	ID       string  `json:"id"`
	ClientID *string `json:"client_id,omitempty"`
	Name     *string `json:"name,omitempty"`
}

func (r *UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.ClientID != nil && validator.IsEmpty(*r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id must not be empty",
		})
	}

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 255 characters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ProjectFilter narrows List to one client when ClientID is set.
type ProjectFilter struct {
	ClientID *string
}

func ToResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:         p.ID,
		ClientID:   p.ClientID,
		ClientName: p.ClientName,
		Name:       p.Name,
	}
}
