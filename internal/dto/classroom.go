package dto

import "rurallearn/internal/domain"

// ClassroomResponse combines the static session with the visitor's controls.
type ClassroomResponse struct {
	Session          *domain.Classroom      `json:"session"`
	Controls         *domain.ClassroomState `json:"controls"`
	MoreParticipants int                    `json:"more_participants"`
}

// ChatDraftRequest replaces the chat draft.
type ChatDraftRequest struct {
	Message string `json:"message" form:"message"`
}
