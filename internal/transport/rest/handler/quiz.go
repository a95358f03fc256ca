package handler

import (
	"encoding/json"
	"net/http"

	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/model"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/service"
)

// QuizHandler handles question and submission endpoints for one quiz
// instance. The router constructs one per instance.
type QuizHandler struct {
	quizSvc      *service.QuizService
	addedMessage string
}

// NewQuizHandler creates a quiz handler. addedMessage is the
// confirmation text returned after bulk ingestion (the two instances
// answer with different messages).
func NewQuizHandler(quizSvc *service.QuizService, addedMessage string) *QuizHandler {
	return &QuizHandler{quizSvc: quizSvc, addedMessage: addedMessage}
}

// addQuestionsRequest keeps questions raw so a non-array payload can be
// told apart from malformed JSON.
type addQuestionsRequest struct {
	Questions json.RawMessage `json:"questions"`
}

// AddQuestions handles POST /{instance}/questions/add-multiple
func (h *QuizHandler) AddQuestions(w http.ResponseWriter, r *http.Request) {
	var req addQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var questions []model.Question
	if err := json.Unmarshal(req.Questions, &questions); err != nil || questions == nil {
		writeError(w, http.StatusBadRequest, "Data must be an array of questions")
		return
	}

	if err := h.quizSvc.AddQuestions(r.Context(), questions); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": h.addedMessage})
}

// ListQuestions handles GET /{instance}/questions
func (h *QuizHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.quizSvc.ListQuestions(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}

// SubmitRequest is the request body for a quiz submission
type SubmitRequest struct {
	Username string        `json:"username"`
	Answers  []interface{} `json:"answers"`
}

// Submit handles POST /{instance}/submit
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	score, err := h.quizSvc.Submit(r.Context(), req.Username, req.Answers)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"score": score})
}
