package domain

// ContentType is the kind of learning material a ContentItem holds.
type ContentType string

const (
	ContentTypeLecture  ContentType = "lecture"
	ContentTypeQuiz     ContentType = "quiz"
	ContentTypeWorkshop ContentType = "workshop"
)

// SubjectAll is the selector value that disables subject filtering.
const SubjectAll = "all"

// Subject is one entry of the library's subject selector.
type Subject struct {
	ID   string `json:"id" yaml:"id" validate:"required"`
	Name string `json:"name" yaml:"name" validate:"required"`
}

// ContentItem is a describable unit of educational material shown in the library.
// Duration and sizes are display strings ("45 min", "Audio: 2.8 MB").
type ContentItem struct {
	ID           int64       `json:"id" yaml:"id" validate:"required,gt=0"`
	Title        string      `json:"title" yaml:"title" validate:"required"`
	Subject      string      `json:"subject" yaml:"subject" validate:"required"`
	Instructor   string      `json:"instructor" yaml:"instructor" validate:"required"`
	Institution  string      `json:"institution" yaml:"institution"`
	Duration     string      `json:"duration" yaml:"duration"`
	Size         string      `json:"size" yaml:"size"`
	DownloadSize string      `json:"download_size" yaml:"download_size"`
	StudentCount int         `json:"student_count" yaml:"student_count" validate:"gte=0"`
	Rating       float64     `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	Type         ContentType `json:"type" yaml:"type" validate:"required,oneof=lecture quiz workshop"`
	Description  string      `json:"description" yaml:"description"`
}

// LibraryStat is one tile of the library statistics footer.
type LibraryStat struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}
