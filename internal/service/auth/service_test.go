package auth

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessExp = "1h"
	testSecret    = "test-secret-key-for-jwt"
)

// fakeEmployeeRepository only serves lookups by code.
type fakeEmployeeRepository struct {
	employee.EmployeeRepository
	byCode map[string]employee.Employee
}

func (f *fakeEmployeeRepository) GetByEmployeeCode(_ context.Context, code string) (employee.Employee, error) {
	emp, ok := f.byCode[code]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return emp, nil
}

func newTestAuthService(t *testing.T, employees ...employee.Employee) (auth.AuthService, jwt.Service) {
	t.Helper()
	repo := &fakeEmployeeRepository{byCode: map[string]employee.Employee{}}
	for _, e := range employees {
		repo.byCode[e.EmployeeCode] = e
	}
	jwtService := jwt.NewJWTService(testSecret, testAccessExp)
	return NewAuthService(repo, jwtService), jwtService
}

func testEmployee(t *testing.T, code, password string) employee.Employee {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	hashed := string(hash)
	return employee.Employee{
		ID:           "0190a6f0-0000-7000-8000-0000000000" + code[len(code)-2:],
		EmployeeCode: code,
		FullName:     "Test Employee",
		Role:         user.RoleManager,
		PasswordHash: &hashed,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	emp := testEmployee(t, "E01", "password123")
	svc, jwtService := newTestAuthService(t, emp)

	response, err := svc.Login(context.Background(), auth.LoginRequest{EmployeeCode: "E01", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, emp.ID, response.EmployeeID)
	assert.Equal(t, "manager", response.Role)
	assert.Greater(t, response.ExpiresAt, int64(0))

	decoded, err := jwtService.JWTAuth().Decode(response.AccessToken)
	require.NoError(t, err)
	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)
	actor, err := jwt.ActorFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, emp.Actor(), actor)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, _ := newTestAuthService(t, testEmployee(t, "E01", "password123"))

	_, err := svc.Login(context.Background(), auth.LoginRequest{EmployeeCode: "E01", Password: "wrongpassword"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmployee(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{EmployeeCode: "nobody", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_NoPasswordSet(t *testing.T) {
	emp := testEmployee(t, "E02", "password123")
	emp.PasswordHash = nil
	svc, _ := newTestAuthService(t, emp)

	_, err := svc.Login(context.Background(), auth.LoginRequest{EmployeeCode: "E02", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_Retired(t *testing.T) {
	emp := testEmployee(t, "E03", "password123")
	emp.Retired = true
	svc, _ := newTestAuthService(t, emp)

	_, err := svc.Login(context.Background(), auth.LoginRequest{EmployeeCode: "E03", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrAccountRetired)
}

func TestAuthService_Login_ValidationError(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "employee_code")
	assert.Contains(t, verrs.ToMap(), "password")
}
