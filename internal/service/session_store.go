package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"rurallearn/internal/cache"
	"rurallearn/internal/domain"
	"rurallearn/internal/logger"

	"go.uber.org/zap"
)

const (
	kindQuiz      = "quiz"
	kindClassroom = "classroom"
	kindNav       = "nav"
)

// SessionStore keeps each visitor's screen state. Entries expire after the
// configured TTL; a missing entry yields the screen's initial state.
type SessionStore interface {
	LoadQuiz(ctx context.Context, visitorID string) (*domain.QuizSession, error)
	SaveQuiz(ctx context.Context, visitorID string, s *domain.QuizSession) error
	ResetQuiz(ctx context.Context, visitorID string) error

	LoadClassroom(ctx context.Context, visitorID string) (*domain.ClassroomState, error)
	SaveClassroom(ctx context.Context, visitorID string, s *domain.ClassroomState) error

	LoadNav(ctx context.Context, visitorID string) (*domain.NavState, error)
	SaveNav(ctx context.Context, visitorID string, s *domain.NavState) error
}

type cacheSessionStore struct {
	cache           domain.Cache
	ttl             time.Duration
	timePerQuestion int
}

// NewSessionStore creates a SessionStore writing JSON documents through cache.
func NewSessionStore(c domain.Cache, ttl time.Duration, timePerQuestion int) SessionStore {
	return &cacheSessionStore{
		cache:           c,
		ttl:             ttl,
		timePerQuestion: timePerQuestion,
	}
}

func (s *cacheSessionStore) key(kind, visitorID string) string {
	return cache.SessionKey(kind, visitorID)
}

// load decodes the stored document into out. It reports false on a miss.
func (s *cacheSessionStore) load(ctx context.Context, kind, visitorID string, out interface{}) (bool, error) {
	key := s.key(kind, visitorID)
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return false, nil
		}
		logger.Get().Error("Failed to read visitor session", zap.String("key", key), zap.Error(err))
		return false, domain.NewSessionUnavailableError(err)
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		// a corrupt entry is treated as a fresh session
		logger.Get().Warn("Discarding undecodable visitor session", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

func (s *cacheSessionStore) save(ctx context.Context, kind, visitorID string, in interface{}) error {
	key := s.key(kind, visitorID)
	raw, err := json.Marshal(in)
	if err != nil {
		return domain.NewInternalError("Failed to encode visitor session", err)
	}
	if err := s.cache.Set(ctx, key, string(raw), s.ttl); err != nil {
		logger.Get().Error("Failed to write visitor session", zap.String("key", key), zap.Error(err))
		return domain.NewSessionUnavailableError(err)
	}
	return nil
}

func (s *cacheSessionStore) LoadQuiz(ctx context.Context, visitorID string) (*domain.QuizSession, error) {
	var qs domain.QuizSession
	found, err := s.load(ctx, kindQuiz, visitorID, &qs)
	if err != nil {
		return nil, err
	}
	if !found {
		return domain.NewQuizSession(s.timePerQuestion), nil
	}
	if qs.Answers == nil {
		qs.Answers = []string{}
	}
	return &qs, nil
}

func (s *cacheSessionStore) SaveQuiz(ctx context.Context, visitorID string, qs *domain.QuizSession) error {
	return s.save(ctx, kindQuiz, visitorID, qs)
}

func (s *cacheSessionStore) ResetQuiz(ctx context.Context, visitorID string) error {
	key := s.key(kindQuiz, visitorID)
	if err := s.cache.Delete(ctx, key); err != nil {
		logger.Get().Error("Failed to reset quiz session", zap.String("key", key), zap.Error(err))
		return domain.NewSessionUnavailableError(err)
	}
	return nil
}

func (s *cacheSessionStore) LoadClassroom(ctx context.Context, visitorID string) (*domain.ClassroomState, error) {
	cs := domain.NewClassroomState()
	found, err := s.load(ctx, kindClassroom, visitorID, cs)
	if err != nil {
		return nil, err
	}
	if !found {
		return domain.NewClassroomState(), nil
	}
	return cs, nil
}

func (s *cacheSessionStore) SaveClassroom(ctx context.Context, visitorID string, cs *domain.ClassroomState) error {
	return s.save(ctx, kindClassroom, visitorID, cs)
}

func (s *cacheSessionStore) LoadNav(ctx context.Context, visitorID string) (*domain.NavState, error) {
	ns := &domain.NavState{}
	found, err := s.load(ctx, kindNav, visitorID, ns)
	if err != nil {
		return nil, err
	}
	if !found {
		return &domain.NavState{}, nil
	}
	return ns, nil
}

func (s *cacheSessionStore) SaveNav(ctx context.Context, visitorID string, ns *domain.NavState) error {
	return s.save(ctx, kindNav, visitorID, ns)
}
