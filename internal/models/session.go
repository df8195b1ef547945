package models

import "time"

type EntryType string

const (
	EntryRaw       EntryType = "raw"
	EntryEvaluated EntryType = "evaluated"
)

// InterviewSession is one practice run: a domain/difficulty choice, the
// question set generated for it, and every answer entry recorded
// against it.
type InterviewSession struct {
	ID                 int64          `json:"id"`
	UserID             int64          `json:"user_id"`
	SelectedDomain     string         `json:"selected_domain"`
	DifficultyLevel    string         `json:"difficulty_level"`
	SessionDate        time.Time      `json:"session_date"`
	ResumeAnalysis     []DomainMatch  `json:"resume_analysis_result,omitempty"`
	GeneratedQuestions []Question     `json:"generated_questions"`
	InterviewResults   []ResultEntry  `json:"interview_results"`
	SelectionMeta      *SelectionMeta `json:"selection_meta,omitempty"`
}

// ResultEntry is one element of a session's interview_results log.
// Raw entries hold just the answer text; evaluated entries carry the
// engine output and the normalized 0-10 score.
type ResultEntry struct {
	Type      EntryType `json:"type"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Timestamp string    `json:"timestamp"`

	// Evaluated-only fields.
	Score      float64           `json:"score,omitempty"`
	RawScore   float64           `json:"raw_score,omitempty"`
	Evaluation *EvaluationResult `json:"evaluation,omitempty"`
}

type SessionCreateRequest struct {
	SelectedDomain  string        `json:"selected_domain"`
	DifficultyLevel string        `json:"difficulty_level"`
	ResumeAnalysis  []DomainMatch `json:"resume_analysis_result,omitempty"`
}

type SessionResponse struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	SelectedDomain  string    `json:"selected_domain"`
	DifficultyLevel string    `json:"difficulty_level"`
	SessionDate     time.Time `json:"session_date"`
}

type SaveAnswerRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type GenerateQuestionsResponse struct {
	SessionID int64         `json:"session_id"`
	Questions []Question    `json:"questions"`
	Meta      SelectionMeta `json:"meta"`
}

type EvaluateAllResponse struct {
	Message     string        `json:"message"`
	Evaluations []ResultEntry `json:"evaluations"`
}
