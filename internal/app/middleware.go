package app

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/planetarium-reservation-system/internal/cache"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

// pageCacheTTL matches the five minute response cache of the catalog and
// session list views.
const pageCacheTTL = 5 * time.Minute

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// authenticate resolves the Authorization header into a user and stashes it
// in the request context. Requests without a header proceed as the
// anonymous user; requests with a malformed or unknown token are rejected.
func (app *Application) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Authorization")

		authorizationHeader := r.Header.Get("Authorization")

		if authorizationHeader == "" {
			r = app.contextSetUser(r, domain.AnonymousUser)
			next.ServeHTTP(w, r)
			return
		}

		token, ok := strings.CutPrefix(authorizationHeader, "Bearer ")
		if !ok {
			app.invalidCredentialsResponse(w, r)
			return
		}

		hash := sha256.Sum256([]byte(token))

		user, err := app.userRepo.GetByToken(r.Context(), hash[:], domain.AuthenticationScope)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrRecordNotFound):
				app.invalidCredentialsResponse(w, r)
			default:
				app.serverErrorResponse(w, r, err)
			}

			return
		}

		r = app.contextSetUser(r, user)

		next.ServeHTTP(w, r)
	})
}

func (app *Application) requireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := app.contextGetUser(r)

		if user.IsAnonymous() {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireActivated guards the catalog and session write endpoints: the
// caller must be authenticated and have an activated account.
func (app *Application) requireActivated(next http.Handler) http.Handler {
	fn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := app.contextGetUser(r)

		if !user.Activated {
			app.inactiveAccountResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})

	return app.requireAuthenticated(fn)
}

// cachePage serves list responses from redis when possible and stores
// successful responses under the resource's key prefix.
func (app *Application) cachePage(prefix string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := fmt.Sprintf("%s:%s", prefix, r.URL.RequestURI())

			cached, err := app.cache.Get(r.Context(), key)
			if err == nil {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.Write(cached)
				return
			}

			if !errors.Is(err, cache.ErrCacheMiss) {
				// A broken cache should degrade to uncached reads, not fail them.
				app.logger.Warn("response cache read failed", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			buf := new(bytes.Buffer)
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Tee(buf)

			next.ServeHTTP(ww, r)

			if ww.Status() == http.StatusOK {
				if err := app.cache.Set(r.Context(), key, buf.Bytes(), pageCacheTTL); err != nil {
					app.logger.Warn("response cache write failed", "error", err)
				}
			}
		})
	}
}

// invalidateCache drops the cached pages of the given resources after a
// successful write.
func (app *Application) invalidateCache(prefixes ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			if ww.Status() >= 400 {
				return
			}

			for _, prefix := range prefixes {
				if err := app.cache.InvalidatePrefix(r.Context(), prefix); err != nil {
					app.logger.Warn("cache invalidation failed", "prefix", prefix, "error", err)
				}
			}
		})
	}
}
