package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

// authenticatedUserHeaders seeds an activated user with a valid bearer token
// and returns the Authorization header to act as that user. The user is
// created once; subsequent calls reuse it.
func (app *TestApp) authenticatedUserHeaders(t testing.TB) map[string]string {
	t.Helper()

	ctx := context.Background()

	user := &domain.User{
		FirstName: TestUserFirstName,
		LastName:  TestUserLastName,
		Email:     TestUserEmail,
	}
	require.NoError(t, user.Password.Set(TestUserPassword))

	var userID int
	err := app.DB.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, email, password_hash, activated)
		VALUES ($1, $2, $3, $4, true)
		ON CONFLICT (email) DO UPDATE SET activated = true
		RETURNING id`,
		user.FirstName, user.LastName, user.Email, user.Password.Hash,
	).Scan(&userID)
	require.NoError(t, err)

	token, err := domain.GenerateToken(int64(userID), 24*time.Hour, domain.AuthenticationScope)
	require.NoError(t, err)

	_, err = app.DB.Exec(ctx, `
		INSERT INTO tokens (hash, user_id, expiry, scope)
		VALUES ($1, $2, $3, $4)`,
		token.Hash, userID, token.Expiry, token.Scope,
	)
	require.NoError(t, err)

	return map[string]string{
		"Authorization": "Bearer " + token.Plaintext,
	}
}

// resetBookingState clears reservation data and reseeds the catalog with one
// theme, one show, one 10x10 dome and one future session. Returns the
// session id.
func resetBookingState(t testing.TB, app *TestApp) int {
	t.Helper()

	ctx := context.Background()

	_, err := app.DB.Exec(ctx, `
		TRUNCATE tickets, reservations, show_sessions, show_theme_assignments,
			astronomy_shows, show_themes, planetarium_domes RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	var themeID int
	err = app.DB.QueryRow(ctx,
		`INSERT INTO show_themes (name) VALUES ($1) RETURNING id`, TestThemeName,
	).Scan(&themeID)
	require.NoError(t, err)

	var showID int
	err = app.DB.QueryRow(ctx,
		`INSERT INTO astronomy_shows (title, description) VALUES ($1, $2) RETURNING id`,
		TestShowTitle, TestShowDescription,
	).Scan(&showID)
	require.NoError(t, err)

	_, err = app.DB.Exec(ctx,
		`INSERT INTO show_theme_assignments (show_id, theme_id) VALUES ($1, $2)`,
		showID, themeID)
	require.NoError(t, err)

	var domeID int
	err = app.DB.QueryRow(ctx,
		`INSERT INTO planetarium_domes (name, seat_rows, seats_per_row) VALUES ($1, $2, $3) RETURNING id`,
		TestDomeName, TestDomeRows, TestDomeSeatsPerRow,
	).Scan(&domeID)
	require.NoError(t, err)

	var sessionID int
	err = app.DB.QueryRow(ctx,
		`INSERT INTO show_sessions (show_id, dome_id, show_time) VALUES ($1, $2, $3) RETURNING id`,
		showID, domeID, time.Now().Add(48*time.Hour).Truncate(time.Second),
	).Scan(&sessionID)
	require.NoError(t, err)

	return sessionID
}

func bookingBody(sessionID, row, seat int) io.Reader {
	return jsonBody(fmt.Sprintf(`{"tickets": [{"row": %d, "seat": %d, "sessionId": %d}]}`, row, seat, sessionID))
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}
