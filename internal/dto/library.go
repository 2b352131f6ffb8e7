package dto

import "rurallearn/internal/domain"

// LibraryResponse is the filtered library screen.
type LibraryResponse struct {
	Query    string               `json:"query"`
	Subject  string               `json:"subject"`
	Subjects []domain.Subject     `json:"subjects"`
	Items    []domain.ContentItem `json:"items"`
	Count    int                  `json:"count"`
	Stats    []domain.LibraryStat `json:"stats"`
}
