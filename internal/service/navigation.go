package service

import (
	"context"

	"rurallearn/internal/domain"
	"rurallearn/internal/dto"
)

// NavigationService builds the navigation bar and keeps the mobile menu flag.
type NavigationService interface {
	Bar(ctx context.Context, visitorID, path string) (*dto.NavBar, error)
	ToggleMenu(ctx context.Context, visitorID string) error
	CloseMenu(ctx context.Context, visitorID string) error
}

type navigationService struct {
	sessions SessionStore
}

// NewNavigationService creates a NavigationService keeping the menu flag in sessions.
func NewNavigationService(sessions SessionStore) NavigationService {
	return &navigationService{sessions: sessions}
}

// Bar marks the item whose href equals path as active. Trailing slashes on
// path are ignored.
func (s *navigationService) Bar(ctx context.Context, visitorID, path string) (*dto.NavBar, error) {
	path = domain.CleanNavPath(path)
	ns, err := s.sessions.LoadNav(ctx, visitorID)
	if err != nil {
		return nil, err
	}

	links := make([]dto.NavLink, 0, len(domain.NavItems))
	for _, item := range domain.NavItems {
		links = append(links, dto.NavLink{
			Name:   item.Name,
			Href:   item.Href,
			Active: item.Href == path,
		})
	}
	return &dto.NavBar{Links: links, MenuOpen: ns.MenuOpen}, nil
}

func (s *navigationService) ToggleMenu(ctx context.Context, visitorID string) error {
	ns, err := s.sessions.LoadNav(ctx, visitorID)
	if err != nil {
		return err
	}
	ns.ToggleMenu()
	return s.sessions.SaveNav(ctx, visitorID, ns)
}

func (s *navigationService) CloseMenu(ctx context.Context, visitorID string) error {
	ns, err := s.sessions.LoadNav(ctx, visitorID)
	if err != nil {
		return err
	}
	if !ns.MenuOpen {
		return nil
	}
	ns.CloseMenu()
	return s.sessions.SaveNav(ctx, visitorID, ns)
}
