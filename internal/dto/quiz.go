package dto

import (
	"encoding/json"
	"fmt"

	"rurallearn/internal/domain"
)

// Quiz states reported to clients.
const (
	QuizStateAnswering = "answering"
	QuizStateResults   = "results"
)

// QuizQuestionResponse is a question without its answer key.
type QuizQuestionResponse struct {
	ID       int64    `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// QuizStateResponse is the whole quiz screen for one visitor.
type QuizStateResponse struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	ParticipantsCount int    `json:"participants_count"`
	ClassAverage      int    `json:"class_average"`
	TotalQuestions    int    `json:"total_questions"`
	State             string `json:"state"`

	// Answering state
	QuestionNumber  int                   `json:"question_number,omitempty"`
	Progress        int                   `json:"progress,omitempty"`
	TimeLeftSeconds int                   `json:"time_left_seconds,omitempty"`
	Question        *QuizQuestionResponse `json:"question,omitempty"`
	SelectedAnswer  string                `json:"selected_answer"`
	CanAdvance      bool                  `json:"can_advance"`
	ActionLabel     string                `json:"action_label,omitempty"`

	// Results state
	Result *domain.QuizResult `json:"result,omitempty"`
}

// SelectOptionRequest carries the chosen option index. JSON clients may
// send it as a string ("1") or a number (1).
type SelectOptionRequest struct {
	Option string `json:"option" form:"option" example:"1"`
}

// UnmarshalJSON accepts the option as a JSON string or number.
func (r *SelectOptionRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Option json.RawMessage `json:"option"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Option = ""
	if len(raw.Option) == 0 || string(raw.Option) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw.Option, &r.Option); err == nil {
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(raw.Option, &n); err != nil {
		return fmt.Errorf("option must be a string or a number: %w", err)
	}
	r.Option = n.String()
	return nil
}
