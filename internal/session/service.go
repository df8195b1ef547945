package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/interview-coach/backend/internal/bank"
	"github.com/interview-coach/backend/internal/engine"
	"github.com/interview-coach/backend/internal/generator"
	"github.com/interview-coach/backend/internal/models"
	"github.com/interview-coach/backend/internal/report"
)

// ErrQuestionNotInSession is returned when an answer references a
// question that was never generated for the session.
var ErrQuestionNotInSession = errors.New("question not part of this session")

// ErrNoQuestions is returned when neither the bank nor the generator
// could produce a question set.
var ErrNoQuestions = errors.New("no questions available")

const timestampLayout = "2006-01-02T15:04:05"

// Service drives the interview flow: question selection, the answer
// log, evaluation, and the final report.
type Service struct {
	store     *Store
	bank      *bank.Bank
	selector  *bank.Selector
	engine    *engine.Engine
	generator *generator.Generator

	questionCount int
}

func NewService(store *Store, b *bank.Bank, selector *bank.Selector, eng *engine.Engine, gen *generator.Generator, questionCount int) *Service {
	if questionCount <= 0 {
		questionCount = 8
	}
	return &Service{
		store:         store,
		bank:          b,
		selector:      selector,
		engine:        eng,
		generator:     gen,
		questionCount: questionCount,
	}
}

func (s *Service) Create(userID int64, req models.SessionCreateRequest) (*models.InterviewSession, error) {
	return s.store.Create(userID, req)
}

func (s *Service) Get(sessionID, userID int64) (*models.InterviewSession, error) {
	return s.store.Get(sessionID, userID)
}

func (s *Service) List(userID int64) ([]models.SessionResponse, error) {
	return s.store.List(userID)
}

// GenerateQuestions builds the session's question set from the bank.
// When the bank has nothing usable for the requested domain, the LLM
// generator tops the bank up and selection runs once more.
func (s *Service) GenerateQuestions(ctx context.Context, sessionID, userID int64) (*models.GenerateQuestionsResponse, error) {
	sess, err := s.store.Get(sessionID, userID)
	if err != nil {
		return nil, err
	}

	sel := s.selector.Select(sess.SelectedDomain, sess.DifficultyLevel, s.questionCount, models.DefaultSelectOptions())

	if (len(sel.Questions) == 0 || sel.Meta.FallbackUsed) && s.generator != nil {
		generated, _, genErr := s.generator.GenerateQuestions(ctx, sess.SelectedDomain, sess.DifficultyLevel, s.questionCount)
		if genErr != nil {
			log.Printf("WARN: question generation failed for domain %q: %v", sess.SelectedDomain, genErr)
		} else if len(generated) > 0 {
			s.bank.Append(generated...)
			sel = s.selector.Select(sess.SelectedDomain, sess.DifficultyLevel, s.questionCount, models.DefaultSelectOptions())
		}
	}

	if len(sel.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	if err := s.store.SaveQuestions(sessionID, userID, sel.Questions, sel.Meta); err != nil {
		return nil, err
	}

	return &models.GenerateQuestionsResponse{
		SessionID: sessionID,
		Questions: sel.Questions,
		Meta:      sel.Meta,
	}, nil
}

// NextQuestion returns the first generated question that has no entry
// in the result log yet. ok is false when every question is answered.
func (s *Service) NextQuestion(sessionID, userID int64) (models.Question, bool, error) {
	sess, err := s.store.Get(sessionID, userID)
	if err != nil {
		return models.Question{}, false, err
	}
	q, ok := nextUnanswered(sess.GeneratedQuestions, sess.InterviewResults)
	return q, ok, nil
}

// SaveAnswer appends a raw entry to the result log without scoring it.
func (s *Service) SaveAnswer(sessionID, userID int64, req models.SaveAnswerRequest) (models.ResultEntry, error) {
	sess, err := s.store.Get(sessionID, userID)
	if err != nil {
		return models.ResultEntry{}, err
	}

	if findQuestion(sess.GeneratedQuestions, req.Question) == nil {
		return models.ResultEntry{}, ErrQuestionNotInSession
	}

	entry := models.ResultEntry{
		Type:      models.EntryRaw,
		Question:  req.Question,
		Answer:    req.Answer,
		Timestamp: time.Now().Format(timestampLayout),
	}

	results := append(sess.InterviewResults, entry)
	if err := s.store.SaveResults(sessionID, userID, results); err != nil {
		return models.ResultEntry{}, err
	}
	return entry, nil
}

// EvaluateAnswer scores one answer immediately and appends an
// evaluated entry to the result log.
func (s *Service) EvaluateAnswer(ctx context.Context, sessionID, userID int64, req models.EvaluateRequest) (models.ResultEntry, error) {
	sess, err := s.store.Get(sessionID, userID)
	if err != nil {
		return models.ResultEntry{}, err
	}

	q := findQuestion(sess.GeneratedQuestions, req.Question)
	if q == nil {
		return models.ResultEntry{}, ErrQuestionNotInSession
	}

	question := *q
	if req.Benchmark != "" {
		question.ExpectedAnswer = req.Benchmark
	}

	entry := s.evaluate(ctx, question, req.Answer, req.Weights)

	results := append(sess.InterviewResults, entry)
	if err := s.store.SaveResults(sessionID, userID, results); err != nil {
		return models.ResultEntry{}, err
	}
	return entry, nil
}

// EvaluateAll scores every raw entry that has no evaluated counterpart
// yet. Calling it twice does not re-evaluate or duplicate anything.
func (s *Service) EvaluateAll(ctx context.Context, sessionID, userID int64) (*models.EvaluateAllResponse, error) {
	sess, err := s.store.Get(sessionID, userID)
	if err != nil {
		return nil, err
	}

	pending := pendingRaws(sess.InterviewResults)
	evaluated := make([]models.ResultEntry, 0, len(pending))
	results := sess.InterviewResults

	for _, raw := range pending {
		q := findQuestion(sess.GeneratedQuestions, raw.Question)
		if q == nil {
			log.Printf("WARN: skipping answer for unknown question %q", raw.Question)
			continue
		}
		entry := s.evaluate(ctx, *q, raw.Answer, nil)
		results = append(results, entry)
		evaluated = append(evaluated, entry)
	}

	if len(evaluated) > 0 {
		if err := s.store.SaveResults(sessionID, userID, results); err != nil {
			return nil, err
		}
	}

	return &models.EvaluateAllResponse{
		Message:     fmt.Sprintf("Evaluated %d answers.", len(evaluated)),
		Evaluations: evaluated,
	}, nil
}

// Results assembles the per-question feedback report from the
// session's evaluated entries.
func (s *Service) Results(sessionID, userID int64) (models.Report, error) {
	sess, err := s.store.Get(sessionID, userID)
	if err != nil {
		return models.Report{}, err
	}

	answers := []models.EvaluatedAnswer{}
	for _, entry := range sess.InterviewResults {
		if entry.Type != models.EntryEvaluated || entry.Evaluation == nil {
			continue
		}
		answers = append(answers, models.EvaluatedAnswer{
			Question: entry.Question,
			Answer:   entry.Answer,
			Score:    entry.Score,
			Reason:   strings.Join(entry.Evaluation.Feedback, " "),
			Criteria: report.CriteriaFrom(*entry.Evaluation, entry.Answer),
		})
	}

	return report.Generate(answers), nil
}

func (s *Service) evaluate(ctx context.Context, q models.Question, answer string, weights *models.ScoreWeights) models.ResultEntry {
	benchmark := q.ExpectedAnswer
	if benchmark == "" {
		benchmark = q.Question
	}

	res := s.engine.Evaluate(ctx, answer, benchmark, q.Keywords, weights)

	return models.ResultEntry{
		Type:       models.EntryEvaluated,
		Question:   q.Question,
		Answer:     answer,
		Timestamp:  time.Now().Format(timestampLayout),
		Score:      engine.Normalize(res.FinalScore),
		RawScore:   res.FinalScore,
		Evaluation: &res,
	}
}

// nextUnanswered returns the first question whose text does not appear
// in the result log.
func nextUnanswered(questions []models.Question, results []models.ResultEntry) (models.Question, bool) {
	answered := make(map[string]bool, len(results))
	for _, entry := range results {
		answered[entry.Question] = true
	}
	for _, q := range questions {
		if !answered[q.Question] {
			return q, true
		}
	}
	return models.Question{}, false
}

// pendingRaws returns the raw entries whose question is not yet
// represented among evaluated entries. A question answered twice is
// evaluated once, on its latest answer.
func pendingRaws(results []models.ResultEntry) []models.ResultEntry {
	done := make(map[string]bool)
	for _, entry := range results {
		if entry.Type == models.EntryEvaluated {
			done[entry.Question] = true
		}
	}

	latest := make(map[string]int)
	order := []string{}
	for i, entry := range results {
		if entry.Type != models.EntryRaw || done[entry.Question] {
			continue
		}
		if _, seen := latest[entry.Question]; !seen {
			order = append(order, entry.Question)
		}
		latest[entry.Question] = i
	}

	pending := make([]models.ResultEntry, 0, len(order))
	for _, q := range order {
		pending = append(pending, results[latest[q]])
	}
	return pending
}

func findQuestion(questions []models.Question, text string) *models.Question {
	for i := range questions {
		if questions[i].Question == text {
			return &questions[i]
		}
	}
	return nil
}
