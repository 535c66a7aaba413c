package jwt

import (
	"testing"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")
	actor := user.Actor{EmployeeID: "emp-1", Role: user.RoleManager}

	token, expiresAt, err := svc.GenerateAccessToken(actor)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Positive(t, expiresAt)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)

	got, err := ActorFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, actor, got)
}

func TestGenerateAccessTokenBadDuration(t *testing.T) {
	svc := NewJWTService("test-secret", "soon")
	_, _, err := svc.GenerateAccessToken(user.Actor{EmployeeID: "emp-1", Role: user.RoleEmployee})
	assert.Error(t, err)
}

func TestActorFromClaimsRejects(t *testing.T) {
	cases := []map[string]interface{}{
		{"employee_id": "emp-1", "role": "employee", "type": "refresh"},
		{"role": "employee", "type": "access"},
		{"employee_id": "emp-1", "role": "janitor", "type": "access"},
		{"employee_id": 42, "role": "employee", "type": "access"},
	}
	for _, c := range cases {
		_, err := ActorFromClaims(c)
		assert.ErrorIs(t, err, ErrInvalidClaims, "%v", c)
	}
}
