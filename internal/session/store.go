package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/interview-coach/backend/internal/models"
)

// ErrNotFound is returned when a session does not exist or belongs to
// another user.
var ErrNotFound = errors.New("session not found")

// Store persists interview sessions. The question set, result log,
// resume snapshot and selection diagnostics live in JSONB columns; the
// row itself only carries the identity and the domain/difficulty
// choice.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Create(userID int64, req models.SessionCreateRequest) (*models.InterviewSession, error) {
	resumeJSON, err := json.Marshal(req.ResumeAnalysis)
	if err != nil {
		return nil, fmt.Errorf("marshal resume analysis: %w", err)
	}

	sess := &models.InterviewSession{
		UserID:             userID,
		SelectedDomain:     req.SelectedDomain,
		DifficultyLevel:    req.DifficultyLevel,
		ResumeAnalysis:     req.ResumeAnalysis,
		GeneratedQuestions: []models.Question{},
		InterviewResults:   []models.ResultEntry{},
	}

	err = s.db.QueryRow(
		`INSERT INTO interview_sessions
		   (user_id, selected_domain, difficulty_level, session_date, resume_analysis_result)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, session_date`,
		userID, req.SelectedDomain, req.DifficultyLevel, time.Now(), resumeJSON,
	).Scan(&sess.ID, &sess.SessionDate)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return sess, nil
}

// Get loads a session owned by userID.
func (s *Store) Get(sessionID, userID int64) (*models.InterviewSession, error) {
	var (
		sess       models.InterviewSession
		resumeJSON []byte
		qJSON      []byte
		rJSON      []byte
		metaJSON   []byte
	)

	err := s.db.QueryRow(
		`SELECT id, user_id, selected_domain, difficulty_level, session_date,
		        resume_analysis_result, generated_questions, interview_results, selection_meta
		 FROM interview_sessions WHERE id = $1 AND user_id = $2`,
		sessionID, userID,
	).Scan(&sess.ID, &sess.UserID, &sess.SelectedDomain, &sess.DifficultyLevel,
		&sess.SessionDate, &resumeJSON, &qJSON, &rJSON, &metaJSON)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if len(resumeJSON) > 0 {
		if err := json.Unmarshal(resumeJSON, &sess.ResumeAnalysis); err != nil {
			return nil, fmt.Errorf("decode resume analysis: %w", err)
		}
	}
	if err := json.Unmarshal(qJSON, &sess.GeneratedQuestions); err != nil {
		return nil, fmt.Errorf("decode generated questions: %w", err)
	}
	if err := json.Unmarshal(rJSON, &sess.InterviewResults); err != nil {
		return nil, fmt.Errorf("decode interview results: %w", err)
	}
	if len(metaJSON) > 0 {
		if err := json.Unmarshal(metaJSON, &sess.SelectionMeta); err != nil {
			return nil, fmt.Errorf("decode selection meta: %w", err)
		}
	}

	return &sess, nil
}

func (s *Store) SaveQuestions(sessionID, userID int64, questions []models.Question, meta models.SelectionMeta) error {
	qJSON, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal selection meta: %w", err)
	}

	res, err := s.db.Exec(
		`UPDATE interview_sessions SET generated_questions = $1, selection_meta = $2
		 WHERE id = $3 AND user_id = $4`,
		qJSON, metaJSON, sessionID, userID,
	)
	if err != nil {
		return fmt.Errorf("save questions: %w", err)
	}
	return requireRow(res)
}

func (s *Store) SaveResults(sessionID, userID int64, results []models.ResultEntry) error {
	rJSON, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	res, err := s.db.Exec(
		`UPDATE interview_sessions SET interview_results = $1 WHERE id = $2 AND user_id = $3`,
		rJSON, sessionID, userID,
	)
	if err != nil {
		return fmt.Errorf("save results: %w", err)
	}
	return requireRow(res)
}

// List returns the user's sessions, newest first, without the JSONB
// payloads.
func (s *Store) List(userID int64) ([]models.SessionResponse, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, selected_domain, difficulty_level, session_date
		 FROM interview_sessions WHERE user_id = $1 ORDER BY session_date DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	sessions := []models.SessionResponse{}
	for rows.Next() {
		var sr models.SessionResponse
		if err := rows.Scan(&sr.ID, &sr.UserID, &sr.SelectedDomain, &sr.DifficultyLevel, &sr.SessionDate); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, sr)
	}
	return sessions, rows.Err()
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
