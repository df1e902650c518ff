package http

import (
	"net/http"

	"go-clinic-scheduling/internal/delivery/http/handler"
	"go-clinic-scheduling/internal/delivery/http/middleware"
	"go-clinic-scheduling/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	practitionerHandler *handler.PractitionerHandler
	appointmentHandler  *handler.AppointmentHandler
	systemHandler       *handler.SystemHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	practitionerHandler *handler.PractitionerHandler,
	appointmentHandler *handler.AppointmentHandler,
	systemHandler *handler.SystemHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		practitionerHandler: practitionerHandler,
		appointmentHandler:  appointmentHandler,
		systemHandler:       systemHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Practitioner directory (any authenticated user)
	directory := api.PathPrefix("/practitioners").Subrouter()
	directory.Use(r.authMiddleware.Authenticate)
	directory.HandleFunc("", r.practitionerHandler.GetAllPractitioners).Methods(http.MethodGet)
	directory.HandleFunc("/{id}", r.practitionerHandler.GetPractitioner).Methods(http.MethodGet)
	directory.HandleFunc("/{id}/availability", r.practitionerHandler.GetAvailability).Methods(http.MethodGet)

	// Patient routes
	patient := api.PathPrefix("/appointments").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	// Booking is patient-only; cancel/complete ownership is enforced in
	// the usecase per role.
	patient.Handle("", middleware.RequirePatient(http.HandlerFunc(r.appointmentHandler.BookAppointment))).Methods(http.MethodPost)
	patient.HandleFunc("/me", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	patient.HandleFunc("/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)
	patient.HandleFunc("/{id}/complete", r.appointmentHandler.CompleteAppointment).Methods(http.MethodPost)

	// Practitioner routes
	practitioner := api.PathPrefix("/schedule").Subrouter()
	practitioner.Use(r.authMiddleware.Authenticate)
	practitioner.Use(middleware.RequireRole(entity.RolePractitioner))
	practitioner.HandleFunc("/me", r.appointmentHandler.GetMySchedule).Methods(http.MethodGet)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/practitioners", r.practitionerHandler.CreatePractitioner).Methods(http.MethodPost)
	admin.HandleFunc("/practitioners/{id}", r.practitionerHandler.DeletePractitioner).Methods(http.MethodDelete)
	admin.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	admin.HandleFunc("/patients/{id}/appointments", r.appointmentHandler.GetAppointmentsForPatient).Methods(http.MethodGet)
	admin.HandleFunc("/practitioners/{id}/appointments", r.appointmentHandler.GetAppointmentsForPractitioner).Methods(http.MethodGet)
	admin.HandleFunc("/notifications", r.systemHandler.GetNotifications).Methods(http.MethodGet)
	admin.HandleFunc("/snapshot", r.systemHandler.SaveSnapshot).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
