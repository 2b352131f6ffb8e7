package service

import (
	"strings"

	"rurallearn/internal/domain"
	"rurallearn/internal/dto"
	"rurallearn/internal/metrics"
	"rurallearn/internal/seed"

	"golang.org/x/text/cases"
)

// LibraryService serves the content library screen.
type LibraryService interface {
	Subjects() []domain.Subject
	Filter(query, subject string) []domain.ContentItem
	Browse(query, subject string) *dto.LibraryResponse
}

type libraryService struct {
	catalog *seed.Catalog
	metrics *metrics.Metrics
}

// NewLibraryService creates a LibraryService over the seed catalog.
func NewLibraryService(catalog *seed.Catalog, m *metrics.Metrics) LibraryService {
	return &libraryService{catalog: catalog, metrics: m}
}

func (s *libraryService) Subjects() []domain.Subject {
	return s.catalog.Subjects
}

// Filter returns, in catalog order, the items whose title, subject or
// instructor contains query and whose subject contains the selected
// subject's name. Matching uses Unicode case folding, and subject ids are
// resolved case-insensitively. An empty or "all" subject matches every item;
// an unknown subject value is matched verbatim.
func (s *libraryService) Filter(query, subject string) []domain.ContentItem {
	fold := cases.Fold()
	q := fold.String(query)
	needle, all := s.subjectNeedle(subject)
	if !all {
		needle = fold.String(needle)
	}

	out := make([]domain.ContentItem, 0, len(s.catalog.Content))
	for _, item := range s.catalog.Content {
		itemSubject := fold.String(item.Subject)
		matchesSearch := strings.Contains(fold.String(item.Title), q) ||
			strings.Contains(itemSubject, q) ||
			strings.Contains(fold.String(item.Instructor), q)
		matchesSubject := all || strings.Contains(itemSubject, needle)
		if matchesSearch && matchesSubject {
			out = append(out, item)
		}
	}

	s.metrics.LibrarySearch(len(out))
	return out
}

func (s *libraryService) subjectNeedle(subject string) (needle string, all bool) {
	subject = strings.TrimSpace(subject)
	if subject == "" || strings.EqualFold(subject, domain.SubjectAll) {
		return "", true
	}
	if sub, ok := s.catalog.SubjectByID(subject); ok {
		return sub.Name, false
	}
	return subject, false
}

// Browse builds the full library screen for a query and subject selection.
func (s *libraryService) Browse(query, subject string) *dto.LibraryResponse {
	if strings.TrimSpace(subject) == "" {
		subject = domain.SubjectAll
	}
	if sub, ok := s.catalog.SubjectByID(subject); ok {
		subject = sub.ID
	}
	items := s.Filter(query, subject)
	return &dto.LibraryResponse{
		Query:    query,
		Subject:  subject,
		Subjects: s.catalog.Subjects,
		Items:    items,
		Count:    len(items),
		Stats:    s.catalog.LibraryStats,
	}
}
