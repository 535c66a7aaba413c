package project

import "errors"

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrProjectNameExists = errors.New("project with this name already exists for the client")
	ErrProjectInUse      = errors.New("project is referenced by work details")
)
