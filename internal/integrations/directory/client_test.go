package directory

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, nopLogger{})
}

func TestGetUser(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/users/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id": 42, "name": "Dr. Rahman", "email": "rahman@cse.du.ac.bd", "role": "faculty"}`)
	})

	user, err := client.GetUser(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "Dr. Rahman", user.Name)
	assert.Equal(t, RoleFaculty, user.Role)
	assert.False(t, user.IsAdmin())
}

func TestGetUser_NotFound(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetUser(context.Background(), 7)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUser_UnexpectedStatus(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.GetUser(context.Background(), 7)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestIsAdmin(t *testing.T) {
	tests := []struct {
		name  string
		role  Role
		admin bool
	}{
		{name: "admin user", role: RoleAdmin, admin: true},
		{name: "faculty user", role: RoleFaculty, admin: false},
		{name: "student user", role: RoleStudent, admin: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprintf(w, `{"id": 1, "name": "x", "email": "x@y.z", "role": %q}`, tt.role)
			})

			admin, err := client.IsAdmin(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, tt.admin, admin)
		})
	}
}

func TestIsAdmin_UnknownUserIsNotAdmin(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	admin, err := client.IsAdmin(context.Background(), 404)
	require.NoError(t, err)
	assert.False(t, admin)
}

func TestIsAdmin_DegradedDirectory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // unreachable on purpose
	client := NewClient(srv.URL, 500*time.Millisecond, nopLogger{})

	admin, err := client.IsAdmin(context.Background(), 1)
	assert.ErrorIs(t, err, ErrServiceDegraded)
	assert.False(t, admin)
}
