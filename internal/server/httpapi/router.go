// Package httpapi is the JSON API: routing, the auth gate, request decoding
// and the mapping of service errors onto HTTP responses.
package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/testdash/internal/logging"
	"github.com/gorilla/mux"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Users      UserService
	Activities ActivityService
	Stats      StatsService
	DB         Pinger
	CORSOrigin string
	Logger     logging.Logger
}

// NewRouter builds the full handler tree including middleware.
func NewRouter(d Deps) http.Handler {
	logger := d.Logger.With("module", "http")

	authH := NewAuthHandler(d.Users, logger)
	dashH := NewDashboardHandler(d.Activities, d.Stats, logger)
	healthH := NewHealthHandler(d.DB)
	gate := RequireAuth(d.Users, logger)

	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	router.HandleFunc("/", healthH.Root).Methods(http.MethodGet)
	router.HandleFunc("/api/health", healthH.Health).Methods(http.MethodGet)

	authR := router.PathPrefix("/api/auth").Subrouter()
	authR.HandleFunc("/register", authH.Register).Methods(http.MethodPost)
	authR.HandleFunc("/login", authH.Login).Methods(http.MethodPost)
	authR.Handle("/profile", gate(http.HandlerFunc(authH.Profile))).Methods(http.MethodGet)
	authR.Handle("/profile", gate(http.HandlerFunc(authH.UpdateProfile))).Methods(http.MethodPut)
	authR.Handle("/profile", gate(http.HandlerFunc(authH.DeleteProfile))).Methods(http.MethodDelete)

	dashR := router.PathPrefix("/api/dashboard").Subrouter()
	dashR.Use(gate)
	dashR.HandleFunc("/stats", dashH.Stats).Methods(http.MethodGet)
	dashR.HandleFunc("/activity", dashH.ListActivity).Methods(http.MethodGet)
	dashR.HandleFunc("/activity", dashH.CreateActivity).Methods(http.MethodPost)
	dashR.HandleFunc("/activity/{id}", dashH.UpdateActivity).Methods(http.MethodPut)
	dashR.HandleFunc("/activity/{id}", dashH.DeleteActivity).Methods(http.MethodDelete)

	return Chain(router,
		WithRequestID,
		WithRecover(logger),
		WithAccessLog(logger),
		WithCORS(d.CORSOrigin),
	)
}
