// Package api defines the request and response types of every endpoint.
// Each endpoint has its own explicit struct; request structs carry the
// validation tags enforced at the boundary.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

// Show themes

type ShowThemeRequest struct {
	Name string `json:"name" validate:"required,min=1,max=63"`
}

type ShowThemeResponse struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type ShowThemeListResponse struct {
	Themes   []ShowThemeResponse `json:"themes"`
	Metadata Metadata            `json:"metadata"`
}

// Astronomy shows

type AstronomyShowRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=63"`
	Description string `json:"description" validate:"required"`
	ThemeIds    []int  `json:"themeIds" validate:"omitempty,unique,dive,min=1"`
}

type AstronomyShowSummary struct {
	Id         int      `json:"id"`
	Title      string   `json:"title"`
	PosterUrl  string   `json:"posterUrl,omitempty"`
	ThemeNames []string `json:"themes"`
}

type AstronomyShowDetailResponse struct {
	Id          int                 `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	PosterUrl   string              `json:"posterUrl,omitempty"`
	Themes      []ShowThemeResponse `json:"themes"`
}

type AstronomyShowListResponse struct {
	Shows    []AstronomyShowSummary `json:"shows"`
	Metadata Metadata               `json:"metadata"`
}

type PosterUploadResponse struct {
	Id        int    `json:"id"`
	PosterUrl string `json:"posterUrl"`
}

// Planetarium domes

type PlanetariumDomeRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=63"`
	Rows        int    `json:"rows" validate:"required,min=1"`
	SeatsPerRow int    `json:"seatsPerRow" validate:"required,min=1"`
}

type PlanetariumDomeResponse struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Rows        int    `json:"rows"`
	SeatsPerRow int    `json:"seatsPerRow"`
	Capacity    int    `json:"capacity"`
}

type PlanetariumDomeListResponse struct {
	Domes    []PlanetariumDomeResponse `json:"domes"`
	Metadata Metadata                  `json:"metadata"`
}

// Show sessions

type ShowSessionRequest struct {
	ShowId   int       `json:"showId" validate:"required,min=1"`
	DomeId   int       `json:"domeId" validate:"required,min=1"`
	ShowTime time.Time `json:"showTime" validate:"required"`
}

type ShowSessionResponse struct {
	Id       int       `json:"id"`
	ShowId   int       `json:"showId"`
	DomeId   int       `json:"domeId"`
	ShowTime time.Time `json:"showTime"`
}

type ShowSessionSummary struct {
	Id               int       `json:"id"`
	ShowTime         time.Time `json:"showTime"`
	ShowTitle        string    `json:"showTitle"`
	ShowPosterUrl    string    `json:"showPosterUrl,omitempty"`
	DomeName         string    `json:"domeName"`
	DomeCapacity     int       `json:"domeCapacity"`
	TicketsAvailable int       `json:"ticketsAvailable"`
}

type ShowSessionListResponse struct {
	Sessions []ShowSessionSummary `json:"sessions"`
	Metadata Metadata             `json:"metadata"`
}

type SeatPlace struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type ShowSessionDetailResponse struct {
	Id          int                     `json:"id"`
	ShowTime    time.Time               `json:"showTime"`
	Show        AstronomyShowSummary    `json:"show"`
	Dome        PlanetariumDomeResponse `json:"dome"`
	TakenPlaces []SeatPlace             `json:"takenPlaces"`
}

// Users and authentication

type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=50,alpha"`
	LastName  string `json:"lastName" validate:"required,min=1,max=50,alpha"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,password"`
}

type UserResponse struct {
	Id        int       `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Activated bool      `json:"activated"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserActivationRequest struct {
	Token string `json:"token" validate:"required,len=43"`
}

type UserActivationResponse struct {
	Activated bool `json:"activated"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthTokenResponse struct {
	Token  string    `json:"token"`
	Expiry time.Time `json:"expiry"`
}

// Reservations and tickets

type TicketRequest struct {
	Row       int `json:"row" validate:"required,min=1"`
	Seat      int `json:"seat" validate:"required,min=1"`
	SessionId int `json:"sessionId" validate:"required,min=1"`
}

type CreateReservationRequest struct {
	Tickets []TicketRequest `json:"tickets" validate:"required,min=1,dive"`
}

type TicketResponse struct {
	Id        int       `json:"id"`
	Row       int       `json:"row"`
	Seat      int       `json:"seat"`
	SessionId int       `json:"sessionId"`
	ShowTime  time.Time `json:"showTime,omitzero"`
	ShowTitle string    `json:"showTitle,omitempty"`
	DomeName  string    `json:"domeName,omitempty"`
}

type ReservationResponse struct {
	Id        int              `json:"id"`
	CreatedAt time.Time        `json:"createdAt"`
	Tickets   []TicketResponse `json:"tickets"`
}

type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Metadata     Metadata              `json:"metadata"`
}
