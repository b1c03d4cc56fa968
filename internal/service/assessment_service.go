package service

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"gruenderai_backend/internal/model"
	"gruenderai_backend/internal/repository"
	"gruenderai_backend/internal/scoring"
	"gruenderai_backend/internal/util"
)

const estimatedTimeMinutes = 10

// AssessmentService orchestrates assessment sessions: it sequences
// question delivery in bank order, records answers and hands completed
// answer maps to the scoring engine. Mutations on one session are
// serialized through a per-session lock.
type AssessmentService struct {
	Questions *repository.QuestionRepository
	Sessions  repository.SessionStore
	Engine    *scoring.Engine

	locks sync.Map
}

func NewAssessmentService(questions *repository.QuestionRepository, sessions repository.SessionStore, engine *scoring.Engine) *AssessmentService {
	return &AssessmentService{
		Questions: questions,
		Sessions:  sessions,
		Engine:    engine,
	}
}

type StartAssessmentRequest struct {
	UserID   string `json:"user_id"`
	Language string `json:"language"`
}

type SubmitAnswerRequest struct {
	SessionID  string            `json:"session_id" binding:"required"`
	QuestionID string            `json:"question_id" binding:"required"`
	Answer     model.AnswerValue `json:"answer"`
}

type ResultsRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// QuestionPayload is the client rendering of one bank question.
type QuestionPayload struct {
	QuestionID   string         `json:"question_id"`
	QuestionText string         `json:"question_text"`
	QuestionType string         `json:"question_type"`
	Options      []model.Option `json:"options"`
	Dimension    string         `json:"dimension"`
	Order        int            `json:"order"`
	Total        int            `json:"total"`
}

type StartAssessmentResponse struct {
	SessionID            string           `json:"session_id"`
	TotalQuestions       int              `json:"total_questions"`
	EstimatedTimeMinutes int              `json:"estimated_time_minutes"`
	FirstQuestion        *QuestionPayload `json:"first_question"`
}

type SubmitAnswerResponse struct {
	NextQuestion *QuestionPayload `json:"next_question"`
	Progress     int              `json:"progress"`
	IsComplete   bool             `json:"is_complete"`
}

type AssessmentResults struct {
	SessionID string `json:"session_id"`
	scoring.Result
	CompletionTime string `json:"completion_time"`
}

type SessionInfo struct {
	SessionID    string `json:"session_id"`
	Progress     int    `json:"progress"`
	AnswersCount int    `json:"answers_count"`
	StartedAt    string `json:"started_at"`
}

// Start creates a fresh session and returns it together with the first
// question. A missing user id gets an anonymous one.
func (s *AssessmentService) Start(req StartAssessmentRequest) (*StartAssessmentResponse, error) {
	userID := req.UserID
	if userID == "" {
		userID = model.GenerateUUID()
	}
	language := req.Language
	if language == "" {
		language = "de"
	}

	sess := &model.Session{
		ID:        model.GenerateUUID(),
		UserID:    userID,
		Language:  language,
		StartedAt: time.Now().UTC(),
		Answers:   make(map[string]model.Answer),
	}
	s.Sessions.Put(sess)

	return &StartAssessmentResponse{
		SessionID:            sess.ID,
		TotalQuestions:       s.Questions.Count(),
		EstimatedTimeMinutes: estimatedTimeMinutes,
		FirstQuestion:        s.questionAt(0),
	}, nil
}

// SubmitAnswer validates the answer against the declared question type,
// records it and returns the next question. The pointer advances only on
// the first answer for a question id, so resubmitting overwrites the
// stored value without changing progress. The submitted id is not
// required to match the question at the current pointer.
func (s *AssessmentService) SubmitAnswer(req SubmitAnswerRequest) (*SubmitAnswerResponse, error) {
	lock := s.sessionLock(req.SessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, ok := s.Sessions.Get(req.SessionID)
	if !ok {
		return nil, util.ErrSessionNotFound
	}

	q, ok := s.Questions.ByID(req.QuestionID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown question id %q", util.ErrInvalidAnswer, req.QuestionID)
	}
	if err := validateAnswer(q, req.Answer); err != nil {
		return nil, err
	}

	if _, answered := sess.Answers[req.QuestionID]; !answered {
		sess.CurrentIndex++
	}
	sess.Answers[req.QuestionID] = model.Answer{
		Value:       req.Answer,
		SubmittedAt: time.Now().UTC(),
	}
	s.Sessions.Put(sess)

	total := s.Questions.Count()
	isComplete := sess.CurrentIndex >= total

	var next *QuestionPayload
	if !isComplete {
		next = s.questionAt(sess.CurrentIndex)
	}

	return &SubmitAnswerResponse{
		NextQuestion: next,
		Progress:     sess.CurrentIndex * 100 / total,
		IsComplete:   isComplete,
	}, nil
}

// Results scores whatever has been answered so far. It is callable in any
// session state; with no answers it yields an overall score of 0 and an
// empty dimensions map.
func (s *AssessmentService) Results(sessionID string) (*AssessmentResults, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, ok := s.Sessions.Get(sessionID)
	if !ok {
		return nil, util.ErrSessionNotFound
	}

	return &AssessmentResults{
		SessionID:      sessionID,
		Result:         s.Engine.Results(sess.Answers),
		CompletionTime: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *AssessmentService) SessionInfo(sessionID string) (*SessionInfo, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, ok := s.Sessions.Get(sessionID)
	if !ok {
		return nil, util.ErrSessionNotFound
	}

	return &SessionInfo{
		SessionID:    sessionID,
		Progress:     sess.CurrentIndex * 100 / s.Questions.Count(),
		AnswersCount: len(sess.Answers),
		StartedAt:    sess.StartedAt.Format(time.RFC3339),
	}, nil
}

func (s *AssessmentService) ActiveSessions() int {
	return s.Sessions.Count()
}

// PurgeStaleSessions drops sessions older than ttl together with their
// locks and reports how many were removed.
func (s *AssessmentService) PurgeStaleSessions(ttl time.Duration) int {
	purged := s.Sessions.PurgeOlderThan(time.Now().UTC().Add(-ttl))
	for _, id := range purged {
		s.locks.Delete(id)
	}
	return len(purged)
}

func (s *AssessmentService) sessionLock(id string) *sync.Mutex {
	v, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	return v.(*sync.Mutex)
}

func (s *AssessmentService) questionAt(index int) *QuestionPayload {
	q, ok := s.Questions.At(index)
	if !ok {
		return nil
	}
	opts := q.Options
	if opts == nil {
		opts = []model.Option{}
	}
	return &QuestionPayload{
		QuestionID:   q.ID,
		QuestionText: q.Text,
		QuestionType: string(q.Type),
		Options:      opts,
		Dimension:    q.Dimension,
		Order:        index + 1,
		Total:        s.Questions.Count(),
	}
}

// validateAnswer checks a raw answer against the question's declared
// type before anything is stored: likert answers must be integers 1-5,
// choice answers must name one of the question's options.
func validateAnswer(q *model.Question, v model.AnswerValue) error {
	if v.Kind == model.AnswerAbsent {
		return fmt.Errorf("%w: answer must be a number or a string", util.ErrInvalidAnswer)
	}

	switch q.Type {
	case model.QuestionLikert:
		if v.Kind != model.AnswerNumber {
			return fmt.Errorf("%w: question %s expects a numeric answer", util.ErrInvalidAnswer, q.ID)
		}
		if v.Number != math.Trunc(v.Number) || v.Number < 1 || v.Number > 5 {
			return fmt.Errorf("%w: answer for question %s must be an integer between 1 and 5", util.ErrInvalidAnswer, q.ID)
		}
	case model.QuestionMultipleChoice:
		if v.Kind != model.AnswerString {
			return fmt.Errorf("%w: question %s expects one of its option values", util.ErrInvalidAnswer, q.ID)
		}
		for _, opt := range q.Options {
			if opt.Value.Kind == model.AnswerString && opt.Value.Text == v.Text {
				return nil
			}
		}
		return fmt.Errorf("%w: %q is not a valid option for question %s", util.ErrInvalidAnswer, v.Text, q.ID)
	case model.QuestionYesNo:
		if v.Kind != model.AnswerString {
			return fmt.Errorf("%w: question %s expects one of its option values", util.ErrInvalidAnswer, q.ID)
		}
		// matched case-insensitively, the engine lowercases before lookup
		for _, opt := range q.Options {
			if opt.Value.Kind == model.AnswerString && strings.EqualFold(opt.Value.Text, v.Text) {
				return nil
			}
		}
		return fmt.Errorf("%w: %q is not a valid option for question %s", util.ErrInvalidAnswer, v.Text, q.ID)
	case model.QuestionText:
		if v.Kind != model.AnswerString {
			return fmt.Errorf("%w: question %s expects a text answer", util.ErrInvalidAnswer, q.ID)
		}
	default:
		return fmt.Errorf("%w: question %s has unsupported type %q", util.ErrInvalidAnswer, q.ID, q.Type)
	}
	return nil
}
