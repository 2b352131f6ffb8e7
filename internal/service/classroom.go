package service

import (
	"context"

	"rurallearn/internal/domain"
	"rurallearn/internal/dto"
	"rurallearn/internal/metrics"
	"rurallearn/internal/seed"
)

// ClassroomService serves the virtual classroom controls. Nothing is
// streamed or sent; the controls only change the visitor's own view.
type ClassroomService interface {
	State(ctx context.Context, visitorID string) (*dto.ClassroomResponse, error)
	ToggleMute(ctx context.Context, visitorID string) (*dto.ClassroomResponse, error)
	ToggleAudio(ctx context.Context, visitorID string) (*dto.ClassroomResponse, error)
	SetChatDraft(ctx context.Context, visitorID, message string) (*dto.ClassroomResponse, error)
}

type classroomService struct {
	classroom *domain.Classroom
	sessions  SessionStore
	metrics   *metrics.Metrics
}

func NewClassroomService(catalog *seed.Catalog, sessions SessionStore, m *metrics.Metrics) ClassroomService {
	return &classroomService{
		classroom: &catalog.Classroom,
		sessions:  sessions,
		metrics:   m,
	}
}

func (s *classroomService) State(ctx context.Context, visitorID string) (*dto.ClassroomResponse, error) {
	cs, err := s.sessions.LoadClassroom(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	return s.view(cs), nil
}

func (s *classroomService) ToggleMute(ctx context.Context, visitorID string) (*dto.ClassroomResponse, error) {
	return s.update(ctx, visitorID, "mute", (*domain.ClassroomState).ToggleMute)
}

func (s *classroomService) ToggleAudio(ctx context.Context, visitorID string) (*dto.ClassroomResponse, error) {
	return s.update(ctx, visitorID, "audio", (*domain.ClassroomState).ToggleAudio)
}

func (s *classroomService) SetChatDraft(ctx context.Context, visitorID, message string) (*dto.ClassroomResponse, error) {
	return s.update(ctx, visitorID, "chat", func(cs *domain.ClassroomState) {
		cs.SetChatDraft(message)
	})
}

func (s *classroomService) update(ctx context.Context, visitorID, control string, apply func(*domain.ClassroomState)) (*dto.ClassroomResponse, error) {
	cs, err := s.sessions.LoadClassroom(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	apply(cs)
	if err := s.sessions.SaveClassroom(ctx, visitorID, cs); err != nil {
		return nil, err
	}
	s.metrics.ClassroomControl(control)
	return s.view(cs), nil
}

func (s *classroomService) view(cs *domain.ClassroomState) *dto.ClassroomResponse {
	return &dto.ClassroomResponse{
		Session:          s.classroom,
		Controls:         cs,
		MoreParticipants: s.classroom.MoreParticipants(),
	}
}
