package client

import (
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
)

// ClientResponse represents the response structure for a client.
type ClientResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateClientRequest represents the request structure for creating a client.
type CreateClientRequest struct {
	Name string `json:"name"`
}

func (r *CreateClientRequest) Validate() error {
	var errs validator.ValidationErrors

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

// UpdateClientRequest represents the request structure for updating a client.
type UpdateClientRequest struct {
	ID   string  `json:"id"`
	Name *string `json:"name,omitempty"`
}

func (r *UpdateClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
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

func ToResponse(c Client) ClientResponse {
	return ClientResponse{ID: c.ID, Name: c.Name}
}
