package master

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/master/client"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/master/project"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClientRepository struct {
	clients   map[string]client.Client
	createErr error
	deleteErr error
}

func (f *fakeClientRepository) Create(_ context.Context, c client.Client) (client.Client, error) {
	if f.createErr != nil {
		return client.Client{}, f.createErr
	}
	c.ID = "client-" + c.Name
	f.clients[c.ID] = c
	return c, nil
}

func (f *fakeClientRepository) GetByID(_ context.Context, id string) (client.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return client.Client{}, pgx.ErrNoRows
	}
	return c, nil
}

func (f *fakeClientRepository) List(context.Context) ([]client.Client, error) {
	var list []client.Client
	for _, c := range f.clients {
		list = append(list, c)
	}
	return list, nil
}

func (f *fakeClientRepository) Update(_ context.Context, req client.UpdateClientRequest) error {
	c, ok := f.clients[req.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	f.clients[req.ID] = c
	return nil
}

func (f *fakeClientRepository) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.clients[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.clients, id)
	return nil
}

type fakeProjectRepository struct {
	project.ProjectRepository
	created []project.Project
}

func (f *fakeProjectRepository) Create(_ context.Context, p project.Project) (project.Project, error) {
	p.ID = "project-" + p.Name
	f.created = append(f.created, p)
	return p, nil
}

func newTestMasterService() (MasterService, *fakeClientRepository, *fakeProjectRepository) {
	clients := &fakeClientRepository{clients: map[string]client.Client{}}
	projects := &fakeProjectRepository{}
	return NewMasterService(clients, projects), clients, projects
}

func TestMasterService_CreateClient(t *testing.T) {
	svc, _, _ := newTestMasterService()

	created, err := svc.CreateClient(context.Background(), client.CreateClientRequest{Name: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", created.Name)

	got, err := svc.GetClient(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestMasterService_CreateClient_DuplicateName(t *testing.T) {
	svc, clients, _ := newTestMasterService()
	clients.createErr = &pgconn.PgError{Code: "23505"}

	_, err := svc.CreateClient(context.Background(), client.CreateClientRequest{Name: "Acme"})
	assert.ErrorIs(t, err, client.ErrClientNameExists)
}

func TestMasterService_CreateClient_Invalid(t *testing.T) {
	svc, _, _ := newTestMasterService()

	_, err := svc.CreateClient(context.Background(), client.CreateClientRequest{Name: "  "})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestMasterService_DeleteClient_InUse(t *testing.T) {
	svc, clients, _ := newTestMasterService()
	clients.clients["c1"] = client.Client{ID: "c1", Name: "Acme"}
	clients.deleteErr = &pgconn.PgError{Code: "23503"}

	assert.ErrorIs(t, svc.DeleteClient(context.Background(), "c1"), client.ErrClientInUse)
}

func TestMasterService_UpdateClient_NotFound(t *testing.T) {
	svc, _, _ := newTestMasterService()
	name := "New"

	err := svc.UpdateClient(context.Background(), client.UpdateClientRequest{ID: "missing", Name: &name})
	assert.ErrorIs(t, err, client.ErrClientNotFound)
}

func TestMasterService_CreateProject_RequiresClient(t *testing.T) {
	svc, clients, projects := newTestMasterService()

	_, err := svc.CreateProject(context.Background(), project.CreateProjectRequest{ClientID: "missing", Name: "Portal"})
	assert.ErrorIs(t, err, client.ErrClientNotFound)
	assert.Empty(t, projects.created)

	clients.clients["c1"] = client.Client{ID: "c1", Name: "Acme"}
	created, err := svc.CreateProject(context.Background(), project.CreateProjectRequest{ClientID: "c1", Name: "Portal"})
	require.NoError(t, err)
	assert.Equal(t, "c1", created.ClientID)
}
