package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

const (
	themeCachePrefix   = "show_theme_view"
	showCachePrefix    = "astronomy_show_view"
	domeCachePrefix    = "planetarium_dome_view"
	sessionCachePrefix = "show_session_view"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(app.authenticate)

	r.Get("/health", app.GetHealth)

	r.Post("/users", app.RegisterUser)
	r.Put("/users/activated", app.ActivateUser)
	r.With(app.requireAuthenticated).Get("/users/me", app.GetCurrentUser)

	r.Post("/tokens/authentication", app.Login)
	r.With(app.requireAuthenticated).Delete("/tokens/authentication", app.Logout)

	r.Route("/themes", func(r chi.Router) {
		r.With(app.requireAuthenticated).Group(func(r chi.Router) {
			r.With(app.cachePage(themeCachePrefix)).Get("/", app.ListShowThemes)
			r.Get("/{id}", app.GetShowTheme)
		})

		r.With(app.requireActivated, app.invalidateCache(themeCachePrefix, showCachePrefix)).Group(func(r chi.Router) {
			r.Post("/", app.CreateShowTheme)
			r.Put("/{id}", app.UpdateShowTheme)
			r.Delete("/{id}", app.DeleteShowTheme)
		})
	})

	r.Route("/shows", func(r chi.Router) {
		r.With(app.requireAuthenticated).Group(func(r chi.Router) {
			r.With(app.cachePage(showCachePrefix)).Get("/", app.ListAstronomyShows)
			r.Get("/{id}", app.GetAstronomyShow)
		})

		r.With(app.requireActivated, app.invalidateCache(showCachePrefix, sessionCachePrefix)).Group(func(r chi.Router) {
			r.Post("/", app.CreateAstronomyShow)
			r.Put("/{id}", app.UpdateAstronomyShow)
			r.Delete("/{id}", app.DeleteAstronomyShow)
			r.Post("/{id}/poster", app.UploadAstronomyShowPoster)
		})
	})

	r.Route("/domes", func(r chi.Router) {
		r.With(app.requireAuthenticated).Group(func(r chi.Router) {
			r.With(app.cachePage(domeCachePrefix)).Get("/", app.ListPlanetariumDomes)
			r.Get("/{id}", app.GetPlanetariumDome)
		})

		r.With(app.requireActivated, app.invalidateCache(domeCachePrefix, sessionCachePrefix)).Group(func(r chi.Router) {
			r.Post("/", app.CreatePlanetariumDome)
			r.Put("/{id}", app.UpdatePlanetariumDome)
			r.Delete("/{id}", app.DeletePlanetariumDome)
		})
	})

	r.Route("/sessions", func(r chi.Router) {
		r.With(app.requireAuthenticated).Group(func(r chi.Router) {
			r.With(app.cachePage(sessionCachePrefix)).Get("/", app.ListShowSessions)
			r.Get("/{id}", app.GetShowSession)
		})

		r.With(app.requireActivated, app.invalidateCache(sessionCachePrefix)).Group(func(r chi.Router) {
			r.Post("/", app.CreateShowSession)
			r.Put("/{id}", app.UpdateShowSession)
			r.Delete("/{id}", app.DeleteShowSession)
		})
	})

	r.Route("/reservations", func(r chi.Router) {
		r.Use(app.requireAuthenticated)

		r.Get("/", app.ListReservations)
		r.Get("/{id}", app.GetReservation)
		r.With(app.invalidateCache(sessionCachePrefix)).Group(func(r chi.Router) {
			r.Post("/", app.CreateReservation)
			r.Delete("/{id}", app.DeleteReservation)
		})
	})

	return r
}
