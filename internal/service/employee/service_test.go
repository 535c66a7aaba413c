package employee

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmployeeRepository struct {
	employees map[string]employee.Employee
	codes     map[string]bool
}

func newFakeEmployeeRepository(employees ...employee.Employee) *fakeEmployeeRepository {
	f := &fakeEmployeeRepository{employees: map[string]employee.Employee{}, codes: map[string]bool{}}
	for _, e := range employees {
		f.employees[e.ID] = e
		f.codes[e.EmployeeCode] = true
	}
	return f
}

func (f *fakeEmployeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return e, nil
}

func (f *fakeEmployeeRepository) GetByEmployeeCode(_ context.Context, code string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.EmployeeCode == code {
			return e, nil
		}
	}
	return employee.Employee{}, pgx.ErrNoRows
}

func (f *fakeEmployeeRepository) List(_ context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	var list []employee.Employee
	for _, e := range f.employees {
		if e.Retired && !filter.IncludeRetired {
			continue
		}
		list = append(list, e)
	}
	return list, nil
}

func (f *fakeEmployeeRepository) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	if f.codes[e.EmployeeCode] {
		return employee.Employee{}, &pgconn.PgError{Code: "23505"}
	}
	e.ID = "id-" + e.EmployeeCode
	f.employees[e.ID] = e
	f.codes[e.EmployeeCode] = true
	return e, nil
}

func (f *fakeEmployeeRepository) Update(_ context.Context, e employee.Employee) error {
	if _, ok := f.employees[e.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.employees[e.ID] = e
	return nil
}

var (
	owner     = user.Actor{EmployeeID: "owner-1", Role: user.RoleOwner}
	manager   = user.Actor{EmployeeID: "mgr-1", Role: user.RoleManager}
	employee1 = user.Actor{EmployeeID: "emp-1", Role: user.RoleEmployee}
)

func TestEmployeeService_CreateEmployee(t *testing.T) {
	repo := newFakeEmployeeRepository()
	svc := NewEmployeeService(repo)

	req := employee.CreateEmployeeRequest{
		EmployeeCode:   "E100",
		FullName:       " Aiko Tanaka ",
		EmploymentType: "full_time",
		Role:           "employee",
		Password:       "password123",
	}
	created, err := svc.CreateEmployee(context.Background(), owner, req)
	require.NoError(t, err)
	assert.Equal(t, "Aiko Tanaka", created.FullName)
	assert.True(t, created.HasPassword)

	stored := repo.employees[created.ID]
	require.NotNil(t, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte("password123")))

	_, err = svc.CreateEmployee(context.Background(), owner, req)
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
}

func TestEmployeeService_CreateEmployee_RequiresOwner(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepository())

	_, err := svc.CreateEmployee(context.Background(), manager, employee.CreateEmployeeRequest{})
	assert.ErrorIs(t, err, user.ErrOwnerAccessRequired)
}

func TestEmployeeService_GetEmployee_Access(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepository(
		employee.Employee{ID: "emp-1", EmployeeCode: "E1"},
		employee.Employee{ID: "emp-2", EmployeeCode: "E2"},
	))

	_, err := svc.GetEmployee(context.Background(), employee1, "emp-1")
	assert.NoError(t, err)

	_, err = svc.GetEmployee(context.Background(), employee1, "emp-2")
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)

	_, err = svc.GetEmployee(context.Background(), manager, "emp-2")
	assert.NoError(t, err)

	_, err = svc.GetEmployee(context.Background(), manager, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_UpdateEmployee_Retire(t *testing.T) {
	repo := newFakeEmployeeRepository(
		employee.Employee{ID: "owner-1", EmployeeCode: "E0", Role: user.RoleOwner},
		employee.Employee{ID: "emp-1", EmployeeCode: "E1", Role: user.RoleEmployee},
	)
	svc := NewEmployeeService(repo)
	retire := true

	_, err := svc.UpdateEmployee(context.Background(), owner, employee.UpdateEmployeeRequest{ID: "owner-1", Retired: &retire})
	assert.ErrorIs(t, err, employee.ErrCannotRetireSelf)

	updated, err := svc.UpdateEmployee(context.Background(), owner, employee.UpdateEmployeeRequest{ID: "emp-1", Retired: &retire})
	require.NoError(t, err)
	assert.True(t, updated.Retired)

	_, err = svc.UpdateEmployee(context.Background(), owner, employee.UpdateEmployeeRequest{ID: "emp-1", Retired: &retire})
	assert.ErrorIs(t, err, employee.ErrEmployeeAlreadyRetired)

	list, err := svc.ListEmployees(context.Background(), manager, employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
