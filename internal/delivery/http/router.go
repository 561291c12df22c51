package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/smthh4/cc13.1-finals-project/internal/delivery/http/handler"
	"github.com/smthh4/cc13.1-finals-project/internal/delivery/http/middleware"
)

type Router struct {
	router              *mux.Router
	patientHandler      *handler.PatientHandler
	treatmentHandler    *handler.TreatmentHandler
	doctorHandler       *handler.DoctorHandler
	roomHandler         *handler.RoomHandler
	corsMiddleware      *middleware.CORSMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	treatmentHandler *handler.TreatmentHandler,
	doctorHandler *handler.DoctorHandler,
	roomHandler *handler.RoomHandler,
	corsMiddleware *middleware.CORSMiddleware,
	requestIDMiddleware *middleware.RequestIDMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		patientHandler:      patientHandler,
		treatmentHandler:    treatmentHandler,
		doctorHandler:       doctorHandler,
		roomHandler:         roomHandler,
		corsMiddleware:      corsMiddleware,
		requestIDMiddleware: requestIDMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Intake & treatment
	api.HandleFunc("/patients/check-in", r.patientHandler.CheckIn).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}/history", r.patientHandler.GetHistory).Methods(http.MethodGet)
	api.HandleFunc("/queue", r.treatmentHandler.QueueStatus).Methods(http.MethodGet)
	api.HandleFunc("/treatments/next", r.treatmentHandler.TreatNext).Methods(http.MethodPost)

	// Doctor registry
	api.HandleFunc("/doctors", r.doctorHandler.RegisterDoctor).Methods(http.MethodPost)
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/available", r.doctorHandler.GetAvailableDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/availability", r.doctorHandler.SetAvailability).Methods(http.MethodPatch)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.RemoveDoctor).Methods(http.MethodDelete)

	// Room registry
	api.HandleFunc("/rooms", r.roomHandler.AddRoom).Methods(http.MethodPost)
	api.HandleFunc("/rooms", r.roomHandler.GetAllRooms).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}", r.roomHandler.RemoveRoom).Methods(http.MethodDelete)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.requestIDMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
