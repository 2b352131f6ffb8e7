package domain

import (
	"math"
	"strconv"
)

// Performance bands shown on the results screen.
const (
	BandExcellent    = "Excellent!"
	BandGoodJob      = "Good Job!"
	BandKeepLearning = "Keep Learning!"
)

// DefaultTimePerQuestion is the countdown start, in seconds, for every question.
const DefaultTimePerQuestion = 45

// QuizQuestion is a multiple-choice question with exactly four options.
type QuizQuestion struct {
	ID          int64    `json:"id" yaml:"id" validate:"required,gt=0"`
	Question    string   `json:"question" yaml:"question" validate:"required"`
	Options     []string `json:"options" yaml:"options" validate:"len=4,dive,required"`
	Correct     int      `json:"-" yaml:"correct" validate:"gte=0,lte=3"`
	Explanation string   `json:"-" yaml:"explanation"`
}

// OptionText returns the text of the option at the given answer string, or
// "" when the answer is not a valid index.
func (q *QuizQuestion) OptionText(answer string) string {
	idx, err := strconv.Atoi(answer)
	if err != nil || idx < 0 || idx >= len(q.Options) {
		return ""
	}
	return q.Options[idx]
}

// Quiz is the static quiz definition plus its header metadata.
type Quiz struct {
	Title             string         `json:"title" yaml:"title" validate:"required"`
	Description       string         `json:"description" yaml:"description"`
	TimePerQuestion   int            `json:"time_per_question" yaml:"time_per_question" validate:"gte=0"`
	ParticipantsCount int            `json:"participants_count" yaml:"participants_count" validate:"gte=0"`
	ClassAverage      int            `json:"class_average" yaml:"class_average" validate:"gte=0,lte=100"`
	Questions         []QuizQuestion `json:"questions" yaml:"questions" validate:"min=1,dive"`
}

// Total returns the number of questions.
func (q *Quiz) Total() int {
	return len(q.Questions)
}

// QuizSession is the ephemeral state of one quiz attempt.
//
// It is Answering(CurrentQuestionIndex) while ShowResults is false and the
// terminal Results state once ShowResults is true.
type QuizSession struct {
	CurrentQuestionIndex int      `json:"current_question_index"`
	SelectedAnswer       string   `json:"selected_answer"`
	Answers              []string `json:"answers"`
	ShowResults          bool     `json:"show_results"`
	TimeLeftSeconds      int      `json:"time_left_seconds"`
}

// NewQuizSession returns a session in Answering(0) with no answers.
func NewQuizSession(timePerQuestion int) *QuizSession {
	if timePerQuestion <= 0 {
		timePerQuestion = DefaultTimePerQuestion
	}
	return &QuizSession{
		Answers:         []string{},
		TimeLeftSeconds: timePerQuestion,
	}
}

// Select records option as the pending answer for the current question.
// option must be the decimal index of one of the question's options. Select
// is ignored once the session shows results.
func (s *QuizSession) Select(quiz *Quiz, option string) error {
	if s.ShowResults {
		return nil
	}
	q := &quiz.Questions[s.CurrentQuestionIndex]
	idx, err := strconv.Atoi(option)
	if err != nil || idx < 0 || idx >= len(q.Options) || strconv.Itoa(idx) != option {
		return NewInvalidOptionError(option, len(q.Options))
	}
	s.SelectedAnswer = option
	return nil
}

// CanAdvance reports whether Next would change the state.
func (s *QuizSession) CanAdvance() bool {
	return !s.ShowResults && s.SelectedAnswer != ""
}

// IsLastQuestion reports whether the current question is the final one.
func (s *QuizSession) IsLastQuestion(quiz *Quiz) bool {
	return s.CurrentQuestionIndex == quiz.Total()-1
}

// Next commits the pending answer. On the last question it moves the session
// to Results; otherwise it advances to the next question and resets the
// countdown. It returns false and leaves the state untouched when no answer
// is selected or results are already shown.
func (s *QuizSession) Next(quiz *Quiz, timePerQuestion int) bool {
	if !s.CanAdvance() {
		return false
	}

	for len(s.Answers) <= s.CurrentQuestionIndex {
		s.Answers = append(s.Answers, "")
	}
	s.Answers[s.CurrentQuestionIndex] = s.SelectedAnswer

	if s.IsLastQuestion(quiz) {
		s.ShowResults = true
		return true
	}

	if timePerQuestion <= 0 {
		timePerQuestion = DefaultTimePerQuestion
	}
	s.CurrentQuestionIndex++
	s.SelectedAnswer = ""
	s.TimeLeftSeconds = timePerQuestion
	return true
}

// Progress is the percentage shown by the progress bar while answering.
func (s *QuizSession) Progress(quiz *Quiz) int {
	return Percentage(s.CurrentQuestionIndex+1, quiz.Total())
}

// Score counts answers equal to the question's correct option index.
func (s *QuizSession) Score(quiz *Quiz) int {
	correct := 0
	for i, answer := range s.Answers {
		if i >= quiz.Total() {
			break
		}
		if idx, err := strconv.Atoi(answer); err == nil && idx == quiz.Questions[i].Correct {
			correct++
		}
	}
	return correct
}

// Percentage returns round(score / total * 100), or 0 for an empty quiz.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// Band maps a percentage to its performance label.
func Band(percentage int) string {
	switch {
	case percentage >= 80:
		return BandExcellent
	case percentage >= 60:
		return BandGoodJob
	default:
		return BandKeepLearning
	}
}

// ReviewEntry is one row of the answer review.
type ReviewEntry struct {
	Question      string `json:"question"`
	YourAnswer    string `json:"your_answer"`
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
	Explanation   string `json:"explanation"`
}

// QuizResult is everything the Results screen renders.
type QuizResult struct {
	Score      int           `json:"score"`
	Total      int           `json:"total"`
	Percentage int           `json:"percentage"`
	Band       string        `json:"band"`
	Review     []ReviewEntry `json:"review"`
}

// Result computes score, percentage, band and the per-question review.
func (s *QuizSession) Result(quiz *Quiz) QuizResult {
	score := s.Score(quiz)
	pct := Percentage(score, quiz.Total())

	review := make([]ReviewEntry, 0, quiz.Total())
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		answer := ""
		if i < len(s.Answers) {
			answer = s.Answers[i]
		}
		idx, err := strconv.Atoi(answer)
		entry := ReviewEntry{
			Question:    q.Question,
			YourAnswer:  q.OptionText(answer),
			IsCorrect:   err == nil && idx == q.Correct,
			Explanation: q.Explanation,
		}
		if !entry.IsCorrect {
			entry.CorrectAnswer = q.Options[q.Correct]
		}
		review = append(review, entry)
	}

	return QuizResult{
		Score:      score,
		Total:      quiz.Total(),
		Percentage: pct,
		Band:       Band(pct),
		Review:     review,
	}
}
