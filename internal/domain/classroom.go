package domain

// MaxChatDraftLength bounds the chat draft kept per visitor.
const MaxChatDraftLength = 500

// ClassroomState holds the visitor's classroom controls. The two toggles
// are independent and nothing here is ever transmitted.
type ClassroomState struct {
	Muted        bool   `json:"muted"`
	AudioEnabled bool   `json:"audio_enabled"`
	ChatDraft    string `json:"chat_draft"`
}

// NewClassroomState returns the initial controls: unmuted, audio on, empty draft.
func NewClassroomState() *ClassroomState {
	return &ClassroomState{AudioEnabled: true}
}

func (c *ClassroomState) ToggleMute() {
	c.Muted = !c.Muted
}

func (c *ClassroomState) ToggleAudio() {
	c.AudioEnabled = !c.AudioEnabled
}

// SetChatDraft replaces the draft wholesale, as each keystroke does.
func (c *ClassroomState) SetChatDraft(draft string) {
	c.ChatDraft = draft
}

// ChatMessage is one line of the seeded chat transcript.
type ChatMessage struct {
	Author string `json:"author" yaml:"author" validate:"required"`
	Text   string `json:"text" yaml:"text" validate:"required"`
}

// Material is a downloadable file listed in the classroom sidebar.
type Material struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	Size string `json:"size" yaml:"size"`
	Kind string `json:"kind" yaml:"kind" validate:"oneof=document audio slides"`
}

// Classroom is the static description of the live session being shown.
type Classroom struct {
	Title          string        `json:"title" yaml:"title" validate:"required"`
	Instructor     string        `json:"instructor" yaml:"instructor" validate:"required"`
	Institution    string        `json:"institution" yaml:"institution"`
	Connected      int           `json:"connected" yaml:"connected" validate:"gte=0"`
	CurrentTopic   string        `json:"current_topic" yaml:"current_topic"`
	AudioQuality   string        `json:"audio_quality" yaml:"audio_quality"`
	Participants   []string      `json:"participants" yaml:"participants"`
	ChatTranscript []ChatMessage `json:"chat_transcript" yaml:"chat_transcript" validate:"dive"`
	Materials      []Material    `json:"materials" yaml:"materials" validate:"dive"`
}

// MoreParticipants is the "+N more students" count below the preview list.
func (c *Classroom) MoreParticipants() int {
	// the instructor is listed first and counts as a participant
	more := c.Connected - len(c.Participants) - 1
	if more < 0 {
		return 0
	}
	return more
}
