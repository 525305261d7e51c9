package api

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"net/http"

	"github.com/google/uuid"

	"github.com/abhisek/kidguard/internal/answer"
	"github.com/abhisek/kidguard/internal/exercise"
	"github.com/abhisek/kidguard/internal/guideline"
	"github.com/abhisek/kidguard/internal/prompt"
)

type generateRequest struct {
	Age         int    `json:"age"`
	Difficulty  string `json:"difficulty,omitempty"`
	SubjectType string `json:"subjectType,omitempty"`
	Count       *int   `json:"count,omitempty"`
}

type exerciseResponse struct {
	ID         string   `json:"id"`
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Hints      []string `json:"hints"`
	Type       string   `json:"type"`
	Difficulty string   `json:"difficulty"`
	Topic      string   `json:"topic,omitempty"`
	AgeRange   string   `json:"ageRange"`
}

type generateResponse struct {
	Exercises    []exerciseResponse `json:"exercises"`
	ResponseTime int64              `json:"responseTime"`
}

// GenerateExercises handles POST /api/exercise/generate. A missing count
// defaults to 1, a missing difficulty follows the child's age and a
// missing subject is picked at random.
func (h *Handler) GenerateExercises(w http.ResponseWriter, r *http.Request) {
	start := h.now()

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON", nil)
		return
	}

	count := 1
	if req.Count != nil {
		count = *req.Count
	}

	subject := guideline.Subject(req.SubjectType)
	if subject == "" {
		subject = guideline.AllSubjects[rand.IntN(len(guideline.AllSubjects))]
	}

	difficulty := guideline.Difficulty(req.Difficulty)
	if difficulty == "" {
		d, err := guideline.DifficultyForAge(req.Age)
		if err != nil {
			h.writeGenerateError(w, r, err)
			return
		}
		difficulty = d
	}

	exercises, err := h.generator.Generate(r.Context(), exercise.GenerateInput{
		Subject:    subject,
		Age:        req.Age,
		Difficulty: difficulty,
		Count:      count,
	})
	if err != nil {
		h.writeGenerateError(w, r, err)
		return
	}

	resp := generateResponse{Exercises: make([]exerciseResponse, 0, len(exercises))}
	for _, ex := range exercises {
		resp.Exercises = append(resp.Exercises, exerciseResponse{
			ID:         uuid.NewString(),
			Question:   ex.Question,
			Answer:     ex.CorrectAnswer,
			Hints:      ex.Hints,
			Type:       string(ex.Subject),
			Difficulty: string(ex.Difficulty),
			Topic:      ex.Topic,
			AgeRange:   ex.AgeRange.String(),
		})
	}
	resp.ResponseTime = h.now().Sub(start).Milliseconds()
	JSON(w, http.StatusOK, resp)
}

func (h *Handler) writeGenerateError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		countErr   *prompt.InvalidCountError
		subjectErr *prompt.InvalidSubjectError
		diffErr    *prompt.InvalidDifficultyError
		ageErr     *guideline.AgeOutOfRangeError
		genErr     *exercise.GenerationFailedError
	)

	switch {
	case errors.As(err, &countErr):
		h.Error(w, http.StatusBadRequest, "INVALID_COUNT",
			"count must be between 1 and 10", map[string]any{"count": countErr.Count})
	case errors.As(err, &subjectErr):
		h.Error(w, http.StatusBadRequest, "INVALID_SUBJECT_TYPE",
			"invalid subject type", map[string]any{
				"subjectType": subjectErr.Subject,
				"validTypes":  guideline.AllSubjects,
			})
	case errors.As(err, &diffErr):
		h.Error(w, http.StatusBadRequest, "INVALID_DIFFICULTY",
			"difficulty must be easy, medium or hard", map[string]any{"difficulty": diffErr.Difficulty})
	case errors.As(err, &ageErr):
		h.Error(w, http.StatusBadRequest, "AGE_OUT_OF_RANGE",
			"age must be between 6 and 14", map[string]any{
				"age": ageErr.Age,
				"min": guideline.MinAge,
				"max": guideline.MaxAge,
			})
	case errors.As(err, &genErr):
		h.Error(w, http.StatusServiceUnavailable, "EXERCISE_GENERATION_FAILED",
			"exercise generation failed", map[string]any{
				"error":     genErr.Cause.Error(),
				"errorType": exercise.ErrorType(genErr.Cause),
			})
	default:
		h.logger.ErrorContext(r.Context(), "unexpected generation error", "error", err)
		h.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", nil)
	}
}

type validateRequest struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correctAnswer"`
	ChildAnswer   string `json:"childAnswer"`
	Age           int    `json:"age"`
	SubjectType   string `json:"subjectType"`
}

// ValidateAnswer handles POST /api/exercise/validate. Once the body is
// decoded it always answers 200 with a verdict.
func (h *Handler) ValidateAnswer(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON", nil)
		return
	}

	verdict := h.checker.Validate(r.Context(), answer.ValidateInput{
		Question:      req.Question,
		CorrectAnswer: req.CorrectAnswer,
		ChildAnswer:   req.ChildAnswer,
		Age:           req.Age,
		Subject:       guideline.Subject(req.SubjectType),
	})
	JSON(w, http.StatusOK, verdict)
}
