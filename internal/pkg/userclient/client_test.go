package userclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdjacome2/microcampus/internal/app/models"
	"github.com/cdjacome2/microcampus/internal/app/models/dto"
	"github.com/cdjacome2/microcampus/internal/pkg/apperrors"
)

func userEnvelope(user models.User) []byte {
	body, _ := json.Marshal(map[string]any{"data": user})
	return body
}

func TestClient_GetUserByID(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantErr    error
		wantUserID int64
	}{
		{
			name: "user found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/users/42", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write(userEnvelope(models.User{ID: 42, FirstName: "Ana", Email: "ana@example.com"}))
			},
			wantUserID: 42,
		},
		{
			name: "remote 404 is user-not-found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantErr: apperrors.ErrUserNotFound,
		},
		{
			name: "remote 500 is upstream failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: apperrors.ErrUpstreamUnavailable,
		},
		{
			name: "garbage body is upstream failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("{not json"))
			},
			wantErr: apperrors.ErrUpstreamUnavailable,
		},
		{
			name: "empty envelope is upstream failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data":null}`))
			},
			wantErr: apperrors.ErrUpstreamUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewClient(srv.URL, 2*time.Second)
			user, err := client.GetUserByID(context.Background(), 42)

			if tt.wantErr != nil {
				assert.Nil(t, user)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, tt.wantUserID, user.ID)
		})
	}
}

func TestClient_GetUserByID_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing is listening anymore

	client := NewClient(srv.URL, 500*time.Millisecond)
	user, err := client.GetUserByID(context.Background(), 42)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestClient_GetUserByID_Timeout(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write(userEnvelope(models.User{ID: 42}))
	}))
	defer slow.Close()

	client := NewClient(slow.URL, 50*time.Millisecond)
	user, err := client.GetUserByID(context.Background(), 42)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	assert.NotErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestClient_CreateUser(t *testing.T) {
	payload := dto.CreateUserRequest{
		FirstName: "Ana",
		LastName:  "Torres",
		Email:     "ana@example.com",
		Phone:     "+34600111222",
		BirthDate: time.Date(1998, 3, 14, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "created",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/v1/users", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var got dto.CreateUserRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.Equal(t, payload.Email, got.Email)

				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write(userEnvelope(models.User{ID: 7, Email: payload.Email}))
			},
		},
		{
			name: "remote validation failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name: "remote email conflict",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
			},
			wantErr: apperrors.ErrEmailAlreadyExists,
		},
		{
			name: "remote 503 is upstream failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			wantErr: apperrors.ErrUpstreamUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewClient(srv.URL, 2*time.Second)
			user, err := client.CreateUser(context.Background(), payload)

			if tt.wantErr != nil {
				assert.Nil(t, user)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, int64(7), user.ID)
		})
	}
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/1", r.URL.Path)
		_, _ = w.Write(userEnvelope(models.User{ID: 1}))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", 2*time.Second)
	_, err := client.GetUserByID(context.Background(), 1)

	assert.NoError(t, err)
}
