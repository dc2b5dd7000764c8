package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/metinatakli/planetarium-reservation-system/api"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
	"github.com/metinatakli/planetarium-reservation-system/internal/mailer"
	"github.com/metinatakli/planetarium-reservation-system/internal/mocks"
	"github.com/metinatakli/planetarium-reservation-system/internal/validator"
)

func TestRegisterUser(t *testing.T) {
	validBody := api.RegisterRequest{
		FirstName: "Carl",
		LastName:  "Sagan",
		Email:     "carl@example.com",
		Password:  "Cosmos123!",
	}

	tests := []struct {
		name                string
		body                any
		createWithTokenFunc func(context.Context, *domain.User, func(*domain.User) (*domain.Token, error)) (*domain.Token, error)
		wantStatus          int
		wantErrMessage      string
		wantEmailSent       bool
	}{
		{
			name: "successful registration",
			body: validBody,
			createWithTokenFunc: func(ctx context.Context, user *domain.User, tokenFn func(*domain.User) (*domain.Token, error)) (*domain.Token, error) {
				user.ID = 1
				return tokenFn(user)
			},
			wantStatus:    http.StatusAccepted,
			wantEmailSent: true,
		},
		{
			name: "weak password",
			body: api.RegisterRequest{
				FirstName: "Carl",
				LastName:  "Sagan",
				Email:     "carl@example.com",
				Password:  "password",
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrPassword,
		},
		{
			name: "missing email",
			body: api.RegisterRequest{
				FirstName: "Carl",
				LastName:  "Sagan",
				Password:  "Cosmos123!",
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name: "duplicate email is not revealed",
			body: validBody,
			createWithTokenFunc: func(ctx context.Context, user *domain.User, tokenFn func(*domain.User) (*domain.Token, error)) (*domain.Token, error) {
				return nil, domain.ErrUserAlreadyExists
			},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "invalid input data",
		},
		{
			name: "database error",
			body: validBody,
			createWithTokenFunc: func(ctx context.Context, user *domain.User, tokenFn func(*domain.User) (*domain.Token, error)) (*domain.Token, error) {
				return nil, fmt.Errorf("database connection error")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMailer := mailer.NewMockMailer()
			app := newTestApplication(func(a *Application) {
				a.userRepo = &mocks.MockUserRepo{
					CreateWithTokenFunc: tt.createWithTokenFunc,
				}
				a.mailer = mockMailer
			})

			w, r := executeRequest(t, http.MethodPost, "/users", tt.body)

			app.RegisterUser(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("RegisterUser() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantEmailSent {
				waitFor(t, func() bool { return len(mockMailer.Sent()) == 1 })

				emails := mockMailer.Sent()
				if len(emails) != 1 {
					t.Fatalf("expected 1 activation email, got %d", len(emails))
				}
				if emails[0].Template != "user_welcome.tmpl" {
					t.Errorf("email template = %v, want user_welcome.tmpl", emails[0].Template)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

// waitFor polls the condition until it holds or the deadline passes, since
// activation emails are sent from a goroutine.
func waitFor(t *testing.T, condition func() bool) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestActivateUser(t *testing.T) {
	validToken := strings.Repeat("a", 43)

	tests := []struct {
		name             string
		body             any
		getByTokenFunc   func(context.Context, []byte, string) (*domain.User, error)
		activateUserFunc func(context.Context, *domain.User) error
		wantStatus       int
		wantErrMessage   string
	}{
		{
			name: "successful activation",
			body: api.UserActivationRequest{Token: validToken},
			getByTokenFunc: func(ctx context.Context, hash []byte, scope string) (*domain.User, error) {
				if scope != domain.UserActivationScope {
					return nil, fmt.Errorf("unexpected scope %q", scope)
				}
				return &domain.User{ID: 1, Activated: false}, nil
			},
			activateUserFunc: func(ctx context.Context, user *domain.User) error {
				return nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name:           "token with wrong length",
			body:           api.UserActivationRequest{Token: "short"},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: fmt.Sprintf(validator.ErrLen, "43"),
		},
		{
			name: "unknown token",
			body: api.UserActivationRequest{Token: validToken},
			getByTokenFunc: func(ctx context.Context, hash []byte, scope string) (*domain.User, error) {
				return nil, domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name: "already activated",
			body: api.UserActivationRequest{Token: validToken},
			getByTokenFunc: func(ctx context.Context, hash []byte, scope string) (*domain.User, error) {
				return &domain.User{ID: 1, Activated: true}, nil
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: ErrEditConflictMsg,
		},
		{
			name: "edit conflict",
			body: api.UserActivationRequest{Token: validToken},
			getByTokenFunc: func(ctx context.Context, hash []byte, scope string) (*domain.User, error) {
				return &domain.User{ID: 1, Activated: false}, nil
			},
			activateUserFunc: func(ctx context.Context, user *domain.User) error {
				return domain.ErrEditConflict
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: ErrEditConflictMsg,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.userRepo = &mocks.MockUserRepo{
					GetByTokenFunc:   tt.getByTokenFunc,
					ActivateUserFunc: tt.activateUserFunc,
				}
			})

			w, r := executeRequest(t, http.MethodPut, "/users/activated", tt.body)

			app.ActivateUser(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("ActivateUser() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusOK {
				var response api.UserActivationResponse
				if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if !response.Activated {
					t.Error("expected activated = true")
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestLogin(t *testing.T) {
	knownUser := func() *domain.User {
		user := &domain.User{ID: 1, Email: "carl@example.com", Activated: true}
		if err := user.Password.Set("Cosmos123!"); err != nil {
			t.Fatal(err)
		}
		return user
	}

	tests := []struct {
		name            string
		body            any
		getByEmailFunc  func(context.Context, string) (*domain.User, error)
		createTokenFunc func(context.Context, *domain.Token) error
		wantStatus      int
		wantErrMessage  string
	}{
		{
			name: "successful login",
			body: api.LoginRequest{Email: "carl@example.com", Password: "Cosmos123!"},
			getByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return knownUser(), nil
			},
			createTokenFunc: func(ctx context.Context, token *domain.Token) error {
				return nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "wrong password",
			body: api.LoginRequest{Email: "carl@example.com", Password: "WrongPass1!"},
			getByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return knownUser(), nil
			},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrInvalidCredentials,
		},
		{
			name: "unknown email",
			body: api.LoginRequest{Email: "nobody@example.com", Password: "Cosmos123!"},
			getByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return nil, domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrInvalidCredentials,
		},
		{
			name:           "malformed email",
			body:           api.LoginRequest{Email: "not-an-email", Password: "Cosmos123!"},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.userRepo = &mocks.MockUserRepo{
					GetByEmailFunc: tt.getByEmailFunc,
				}
				a.tokenRepo = &mocks.MockTokenRepo{
					CreateFunc: tt.createTokenFunc,
				}
			})

			w, r := executeRequest(t, http.MethodPost, "/tokens/authentication", tt.body)

			app.Login(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("Login() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusCreated {
				var response api.AuthTokenResponse
				if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if len(response.Token) != 43 {
					t.Errorf("token length = %d, want 43", len(response.Token))
				}
				if !response.Expiry.After(time.Now()) {
					t.Error("token expiry should be in the future")
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestLogout(t *testing.T) {
	var deletedScope string
	var deletedUserID int

	app := newTestApplication(func(a *Application) {
		a.tokenRepo = &mocks.MockTokenRepo{
			DeleteAllForUserFunc: func(ctx context.Context, tokenScope string, userID int) error {
				deletedScope = tokenScope
				deletedUserID = userID
				return nil
			},
		}
	})

	w, r := executeRequest(t, http.MethodDelete, "/tokens/authentication", nil)
	r = setupTestUser(app, r, activatedUser(7))

	app.Logout(w, r)

	if w.Code != http.StatusNoContent {
		t.Errorf("Logout() status = %v, want %v", w.Code, http.StatusNoContent)
	}
	if deletedScope != domain.AuthenticationScope {
		t.Errorf("deleted scope = %v, want %v", deletedScope, domain.AuthenticationScope)
	}
	if deletedUserID != 7 {
		t.Errorf("deleted user id = %v, want 7", deletedUserID)
	}
}
