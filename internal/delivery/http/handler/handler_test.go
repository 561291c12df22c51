package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/smthh4/cc13.1-finals-project/internal/domain/entity"
	domainRepo "github.com/smthh4/cc13.1-finals-project/internal/domain/repository"
	"github.com/smthh4/cc13.1-finals-project/internal/repository"
	"github.com/smthh4/cc13.1-finals-project/internal/usecase"
	"github.com/smthh4/cc13.1-finals-project/pkg/validator"
)

// ---------- Helpers ----------

type testEnv struct {
	router  *mux.Router
	doctors domainRepo.DoctorRegistry
	rooms   domainRepo.RoomRegistry
	queue   domainRepo.WaitingQueue
}

func newTestEnv() *testEnv {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	var mu sync.Mutex
	doctors := repository.NewDoctorRegistry()
	rooms := repository.NewRoomRegistry()
	queue := repository.NewWaitingQueue()
	patients := repository.NewPatientDirectory()
	history := repository.NewHistoryStore()

	intakeUsecase := usecase.NewIntakeUsecase(&mu, log, doctors, rooms, queue, patients, history)
	doctorUsecase := usecase.NewDoctorUsecase(&mu, log, doctors, queue)
	roomUsecase := usecase.NewRoomUsecase(&mu, log, rooms)
	historyUsecase := usecase.NewHistoryUsecase(&mu, log, patients, history)

	customValidator := validator.NewValidator()
	patientHandler := NewPatientHandler(intakeUsecase, historyUsecase, customValidator)
	treatmentHandler := NewTreatmentHandler(intakeUsecase, customValidator)
	doctorHandler := NewDoctorHandler(doctorUsecase, customValidator)
	roomHandler := NewRoomHandler(roomUsecase, customValidator)

	router := mux.NewRouter()
	router.HandleFunc("/patients/check-in", patientHandler.CheckIn).Methods(http.MethodPost)
	router.HandleFunc("/patients", patientHandler.ListPatients).Methods(http.MethodGet)
	router.HandleFunc("/patients/{id}/history", patientHandler.GetHistory).Methods(http.MethodGet)
	router.HandleFunc("/queue", treatmentHandler.QueueStatus).Methods(http.MethodGet)
	router.HandleFunc("/treatments/next", treatmentHandler.TreatNext).Methods(http.MethodPost)
	router.HandleFunc("/doctors", doctorHandler.RegisterDoctor).Methods(http.MethodPost)
	router.HandleFunc("/doctors/{id}", doctorHandler.RemoveDoctor).Methods(http.MethodDelete)
	router.HandleFunc("/rooms", roomHandler.AddRoom).Methods(http.MethodPost)

	return &testEnv{router: router, doctors: doctors, rooms: rooms, queue: queue}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

// ---------- Check-in ----------

func TestCheckInHandler_Success(t *testing.T) {
	env := newTestEnv()
	env.doctors.Register(entity.NewDoctor("D11111111", "Dr. Smith"))

	rec := env.do(t, http.MethodPost, "/patients/check-in",
		`{"name":"Ana","concern":"fever","priority":2,"doctor_id":"D11111111"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	data := decodeData(t, rec)
	if data["doctor_name"] != "Dr. Smith" {
		t.Errorf("unexpected payload: %v", data)
	}
	if env.queue.Len() != 1 {
		t.Errorf("expected 1 queued patient, got %d", env.queue.Len())
	}
}

func TestCheckInHandler_ValidationFailure(t *testing.T) {
	env := newTestEnv()
	env.doctors.Register(entity.NewDoctor("D11111111", "Dr. Smith"))

	rec := env.do(t, http.MethodPost, "/patients/check-in",
		`{"name":"Ana","concern":"fever","priority":9,"doctor_id":"D11111111"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range priority, got %d", rec.Code)
	}
	if env.queue.Len() != 0 {
		t.Error("invalid check-in must not enqueue")
	}
}

func TestCheckInHandler_NoDoctors(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/patients/check-in",
		`{"name":"Ana","concern":"fever","priority":2,"doctor_id":"D11111111"}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 with no doctors available, got %d", rec.Code)
	}
}

// ---------- Treat next ----------

func TestTreatNextHandler_EmptyQueue(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/treatments/next",
		`{"diagnosis":"flu","treatment":"rest"}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for empty queue, got %d", rec.Code)
	}
}

func TestTreatNextHandler_CompletesTreatment(t *testing.T) {
	env := newTestEnv()
	env.doctors.Register(entity.NewDoctor("D11111111", "Dr. Smith"))
	env.rooms.Add(entity.NewRoom("R11111111", "Consultation"))
	env.do(t, http.MethodPost, "/patients/check-in",
		`{"name":"Ana","concern":"fever","priority":2,"doctor_id":"D11111111"}`)

	rec := env.do(t, http.MethodPost, "/treatments/next",
		`{"diagnosis":"flu","treatment":"rest"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data := decodeData(t, rec)
	if data["status"] != "completed" || data["room_id"] != "R11111111" {
		t.Errorf("unexpected outcome: %v", data)
	}
}

func TestTreatNextHandler_InvalidFallback(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/treatments/next",
		`{"doctor_fallback":"panic","diagnosis":"flu","treatment":"rest"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid fallback, got %d", rec.Code)
	}
}

// ---------- Registry admin ----------

func TestRegisterDoctorHandler(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/doctors", `{"name":"Dr. Smith"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	data := decodeData(t, rec)
	id, _ := data["id"].(string)
	if !strings.HasPrefix(id, "D") {
		t.Errorf("unexpected doctor id %q", id)
	}
}

func TestRemoveDoctorHandler_NotFound(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodDelete, "/doctors/Dmissing11", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetHistoryHandler_UnknownPatient(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/patients/Pmissing11/history", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestQueueStatusHandler(t *testing.T) {
	env := newTestEnv()
	env.doctors.Register(entity.NewDoctor("D11111111", "Dr. Smith"))
	env.do(t, http.MethodPost, "/patients/check-in",
		`{"name":"Ana","concern":"fever","priority":2,"doctor_id":"D11111111"}`)

	rec := env.do(t, http.MethodGet, "/queue", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := decodeData(t, rec)
	if waiting, _ := data["waiting"].(float64); waiting != 1 {
		t.Errorf("expected 1 waiting, got %v", data["waiting"])
	}
}

func TestAddRoomHandler_ValidationFailure(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/rooms", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing room type, got %d", rec.Code)
	}
}
