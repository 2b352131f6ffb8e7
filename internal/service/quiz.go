package service

import (
	"context"

	"rurallearn/internal/domain"
	"rurallearn/internal/dto"
	"rurallearn/internal/logger"
	"rurallearn/internal/metrics"
	"rurallearn/internal/seed"

	"go.uber.org/zap"
)

const (
	actionNext   = "Next"
	actionFinish = "Finish Quiz"
)

// QuizService drives each visitor's quiz attempt.
type QuizService interface {
	State(ctx context.Context, visitorID string) (*dto.QuizStateResponse, error)
	Select(ctx context.Context, visitorID, option string) (*dto.QuizStateResponse, error)
	Next(ctx context.Context, visitorID string) (*dto.QuizStateResponse, error)
	Restart(ctx context.Context, visitorID string) (*dto.QuizStateResponse, error)
}

type quizService struct {
	quiz     *domain.Quiz
	sessions SessionStore
	metrics  *metrics.Metrics
}

// NewQuizService creates a QuizService for the seeded quiz.
func NewQuizService(catalog *seed.Catalog, sessions SessionStore, m *metrics.Metrics) QuizService {
	return &quizService{
		quiz:     &catalog.Quiz,
		sessions: sessions,
		metrics:  m,
	}
}

// State implements QuizService
func (s *quizService) State(ctx context.Context, visitorID string) (*dto.QuizStateResponse, error) {
	qs, err := s.load(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	return s.view(qs), nil
}

// Select implements QuizService
func (s *quizService) Select(ctx context.Context, visitorID, option string) (*dto.QuizStateResponse, error) {
	qs, err := s.load(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	if err := qs.Select(s.quiz, option); err != nil {
		return nil, err
	}
	if err := s.sessions.SaveQuiz(ctx, visitorID, qs); err != nil {
		return nil, err
	}
	return s.view(qs), nil
}

// Next implements QuizService. It is a no-op while no option is selected.
func (s *quizService) Next(ctx context.Context, visitorID string) (*dto.QuizStateResponse, error) {
	qs, err := s.load(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	if !qs.Next(s.quiz, s.quiz.TimePerQuestion) {
		return s.view(qs), nil
	}
	if err := s.sessions.SaveQuiz(ctx, visitorID, qs); err != nil {
		return nil, err
	}

	if qs.ShowResults {
		res := qs.Result(s.quiz)
		s.metrics.QuizCompleted(res.Band)
		logger.Get().Info("Quiz completed",
			zap.String("visitor", visitorID),
			zap.Int("score", res.Score),
			zap.Int("percentage", res.Percentage),
		)
	}
	return s.view(qs), nil
}

// Restart implements QuizService
func (s *quizService) Restart(ctx context.Context, visitorID string) (*dto.QuizStateResponse, error) {
	if err := s.sessions.ResetQuiz(ctx, visitorID); err != nil {
		return nil, err
	}
	return s.view(domain.NewQuizSession(s.quiz.TimePerQuestion)), nil
}

// load fetches the visitor's session, starting over when the stored state
// does not fit the current quiz.
func (s *quizService) load(ctx context.Context, visitorID string) (*domain.QuizSession, error) {
	qs, err := s.sessions.LoadQuiz(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	if qs.CurrentQuestionIndex < 0 || qs.CurrentQuestionIndex >= s.quiz.Total() || len(qs.Answers) > s.quiz.Total() {
		logger.Get().Warn("Discarding quiz session that does not fit the quiz",
			zap.String("visitor", visitorID),
			zap.Int("index", qs.CurrentQuestionIndex),
		)
		return domain.NewQuizSession(s.quiz.TimePerQuestion), nil
	}
	return qs, nil
}

func (s *quizService) view(qs *domain.QuizSession) *dto.QuizStateResponse {
	resp := &dto.QuizStateResponse{
		Title:             s.quiz.Title,
		Description:       s.quiz.Description,
		ParticipantsCount: s.quiz.ParticipantsCount,
		ClassAverage:      s.quiz.ClassAverage,
		TotalQuestions:    s.quiz.Total(),
		SelectedAnswer:    qs.SelectedAnswer,
		CanAdvance:        qs.CanAdvance(),
	}

	if qs.ShowResults {
		res := qs.Result(s.quiz)
		resp.State = dto.QuizStateResults
		resp.Result = &res
		return resp
	}

	q := s.quiz.Questions[qs.CurrentQuestionIndex]
	resp.State = dto.QuizStateAnswering
	resp.QuestionNumber = qs.CurrentQuestionIndex + 1
	resp.Progress = qs.Progress(s.quiz)
	resp.TimeLeftSeconds = qs.TimeLeftSeconds
	resp.Question = &dto.QuizQuestionResponse{
		ID:       q.ID,
		Question: q.Question,
		Options:  q.Options,
	}
	resp.ActionLabel = actionNext
	if qs.IsLastQuestion(s.quiz) {
		resp.ActionLabel = actionFinish
	}
	return resp
}
