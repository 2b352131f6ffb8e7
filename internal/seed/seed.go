// Package seed loads the static screen content: the library catalog, the quiz,
// the classroom session and the landing page copy. Everything is read once at
// startup and never mutated afterwards.
package seed

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"rurallearn/internal/domain"
	"rurallearn/internal/validation"

	"gopkg.in/yaml.v3"
)

//go:embed data
var embedded embed.FS

// Catalog is the complete seed data set.
type Catalog struct {
	Subjects     []domain.Subject
	Content      []domain.ContentItem
	LibraryStats []domain.LibraryStat
	Quiz         domain.Quiz
	Classroom    domain.Classroom
	Landing      domain.Landing

	subjectsByID map[string]domain.Subject
}

type libraryDoc struct {
	Subjects []domain.Subject     `yaml:"subjects" validate:"min=1,dive"`
	Content  []domain.ContentItem `yaml:"content" validate:"dive"`
	Stats    []domain.LibraryStat `yaml:"stats"`
}

// Default loads the seed files compiled into the binary.
func Default() (*Catalog, error) {
	data, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// MustDefault is Default for callers that cannot continue without seed data.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads library.yaml, quiz.yaml, classroom.yaml and landing.yaml from
// fsys. Each file is checked against the embedded JSON schema and then
// against the record validation rules.
func Load(fsys fs.FS) (*Catalog, error) {
	schemas, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	v := validation.NewValidator()

	var lib libraryDoc
	if err := decode(fsys, schemas, v, "library", &lib); err != nil {
		return nil, err
	}
	c := &Catalog{
		Subjects:     lib.Subjects,
		Content:      lib.Content,
		LibraryStats: lib.Stats,
	}
	if err := decode(fsys, schemas, v, "quiz", &c.Quiz); err != nil {
		return nil, err
	}
	if err := decode(fsys, schemas, v, "classroom", &c.Classroom); err != nil {
		return nil, err
	}
	if err := decode(fsys, schemas, v, "landing", &c.Landing); err != nil {
		return nil, err
	}

	if err := c.index(); err != nil {
		return nil, err
	}
	if c.Quiz.TimePerQuestion == 0 {
		c.Quiz.TimePerQuestion = domain.DefaultTimePerQuestion
	}
	return c, nil
}

func decode(fsys, schemas fs.FS, v *validation.Validator, name string, out interface{}) error {
	file := name + ".yaml"
	raw, err := fs.ReadFile(fsys, file)
	if err != nil {
		return domain.NewInvalidSeedError("reading "+file, err)
	}

	var doc interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return domain.NewInvalidSeedError("parsing "+file, err)
	}
	if err := checkSchema(schemas, name, doc); err != nil {
		return domain.NewInvalidSeedError("checking "+file, err)
	}

	if err := yaml.Unmarshal(raw, out); err != nil {
		return domain.NewInvalidSeedError("decoding "+file, err)
	}
	if errs := v.ValidateStruct(out); len(errs) > 0 {
		return domain.NewInvalidSeedError("validating "+file, errs)
	}
	return nil
}

func (c *Catalog) index() error {
	c.subjectsByID = make(map[string]domain.Subject, len(c.Subjects))
	for _, s := range c.Subjects {
		id := strings.ToLower(s.ID)
		if _, dup := c.subjectsByID[id]; dup {
			return domain.NewInvalidSeedError(fmt.Sprintf("duplicate subject id %q", s.ID), nil)
		}
		c.subjectsByID[id] = s
	}
	if _, ok := c.SubjectByID(domain.SubjectAll); !ok {
		return domain.NewInvalidSeedError(fmt.Sprintf("subject %q is missing", domain.SubjectAll), nil)
	}

	seen := make(map[int64]struct{}, len(c.Content))
	for _, item := range c.Content {
		if _, dup := seen[item.ID]; dup {
			return domain.NewInvalidSeedError(fmt.Sprintf("duplicate content id %d", item.ID), nil)
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}

// SubjectByID looks up a selector entry. Ids match case-insensitively.
func (c *Catalog) SubjectByID(id string) (domain.Subject, bool) {
	s, ok := c.subjectsByID[strings.ToLower(id)]
	return s, ok
}
