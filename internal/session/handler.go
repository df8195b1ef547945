package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/interview-coach/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("user_id").(int64)

	var req models.SessionCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	req.SelectedDomain = strings.TrimSpace(req.SelectedDomain)
	req.DifficultyLevel = strings.TrimSpace(req.DifficultyLevel)
	if req.SelectedDomain == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "selected_domain is required"})
		return
	}
	if req.DifficultyLevel == "" {
		req.DifficultyLevel = "medium"
	}

	sess, err := h.service.Create(userID, req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create session"})
		return
	}

	writeJSON(w, http.StatusCreated, sess)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("user_id").(int64)

	sessions, err := h.service.List(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list sessions"})
		return
	}

	writeJSON(w, http.StatusOK, sessions)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("user_id").(int64)
	sessionID, ok := sessionIDFrom(w, r)
	if !ok {
		return
	}

	sess, err := h.service.Get(sessionID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sess)
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("user_id").(int64)
	sessionID, ok := sessionIDFrom(w, r)
	if !ok {
		return
	}

	resp, err := h.service.GenerateQuestions(r.Context(), sessionID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("user_id").(int64)
	sessionID, ok := sessionIDFrom(w, r)
	if !ok {
		return
	}

	q, found, err := h.service.NextQuestion(sessionID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !found {
		writeJSON(w, http.StatusOK, map[string]interface{}{"done": true})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"done": false, "question": q})
}

func (h *Handler) SaveAnswer(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("user_id").(int64)
	sessionID, ok := sessionIDFrom(w, r)
	if !ok {
		return
	}

	var req models.SaveAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "question is required"})
		return
	}

	entry, err := h.service.SaveAnswer(sessionID, userID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (h *Handler) EvaluateAnswer(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("user_id").(int64)
	sessionID, ok := sessionIDFrom(w, r)
	if !ok {
		return
	}

	var req models.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "question is required"})
		return
	}

	entry, err := h.service.EvaluateAnswer(r.Context(), sessionID, userID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) EvaluateAll(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("user_id").(int64)
	sessionID, ok := sessionIDFrom(w, r)
	if !ok {
		return
	}

	resp, err := h.service.EvaluateAll(r.Context(), sessionID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) Results(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("user_id").(int64)
	sessionID, ok := sessionIDFrom(w, r)
	if !ok {
		return
	}

	rep, err := h.service.Results(sessionID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rep)
}

func sessionIDFrom(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid session id"})
		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Session not found"})
	case errors.Is(err, ErrQuestionNotInSession):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Question is not part of this session"})
	case errors.Is(err, ErrNoQuestions):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "No questions available for this domain"})
	default:
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
