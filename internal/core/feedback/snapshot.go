package feedback

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"insighthub/internal/core/normalize"
	perr "insighthub/internal/platform/errors"
	"insighthub/internal/platform/validate"

	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/google/uuid"
)

// snapshotSpace namespaces the content-derived snapshot ids
var snapshotSpace = uuid.MustParse("6f1c2a4e-2b0d-5c7e-9a51-3e8f0b6d4c21")

var registerOnce sync.Once

func registerTags() {
	registerOnce.Do(func() {
		_ = validate.RegisterTag("notblank", validators.NotBlank, "{0} must not be blank")
		_ = validate.RegisterTag("sentiment", func(fl validate.FieldLevel) bool {
			return Sentiment(fl.Field().String()).Valid()
		}, `{0} has unknown value "{1}"`)
	})
}

// Snapshot is an immutable, validated set of comments taken at one instant.
// All aggregation passes read from a snapshot; a refresh builds a new one
type Snapshot struct {
	id       uuid.UUID
	takenAt  time.Time
	comments []Comment
	byID     map[string]int
}

// NewSnapshot validates and copies comments. Text fields are sanitized before storage.
// The first invalid comment fails the whole snapshot with a validation error naming it
func NewSnapshot(comments []Comment, takenAt time.Time) (*Snapshot, error) {
	registerTags()

	s := &Snapshot{
		takenAt:  takenAt,
		comments: make([]Comment, 0, len(comments)),
		byID:     make(map[string]int, len(comments)),
	}

	h := make([]byte, 0, 64*len(comments)+32)
	h = append(h, takenAt.UTC().Format(time.RFC3339Nano)...)

	for i, in := range comments {
		c := clean(in)
		if err := validate.Struct(c); err != nil {
			field := ""
			if e, ok := perr.As(err); ok {
				field = e.Field()
			}
			return nil, perr.WithField(perr.Validationf("%s: %v", ref(c, i), err), field)
		}
		if _, dup := s.byID[c.ID]; dup {
			return nil, perr.WithField(perr.Validationf("%s: duplicate id", ref(c, i)), "id")
		}
		s.byID[c.ID] = len(s.comments)
		s.comments = append(s.comments, c)

		h = append(h, 0)
		h = append(h, c.ID...)
		h = append(h, 0)
		h = append(h, c.FullText...)
	}

	s.id = uuid.NewSHA1(snapshotSpace, h)
	return s, nil
}

func ref(c Comment, i int) string {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Sprintf("comment #%d", i+1)
	}
	return fmt.Sprintf("comment %q", c.ID)
}

func clean(c Comment) Comment {
	c = c.clone()
	c.ID = strings.TrimSpace(normalize.Sanitize(c.ID))
	c.FullText = normalize.Sanitize(c.FullText)
	c.Summary = normalize.Sanitize(c.Summary)
	c.Author = normalize.Sanitize(c.Author)
	c.Mood = strings.TrimSpace(normalize.Sanitize(c.Mood))
	for i, k := range c.Keywords {
		c.Keywords[i] = strings.TrimSpace(normalize.Sanitize(k))
	}
	return c
}

// ID is derived from the snapshot time and the ordered comment ids and texts, so the
// same input always yields the same id
func (s *Snapshot) ID() uuid.UUID { return s.id }

// TakenAt is the snapshot instant, used as "now" by time-relative scoring
func (s *Snapshot) TakenAt() time.Time { return s.takenAt }

// Len returns the number of comments
func (s *Snapshot) Len() int { return len(s.comments) }

// Comments returns a copy of the comments in ingestion order
func (s *Snapshot) Comments() []Comment {
	out := make([]Comment, len(s.comments))
	for i, c := range s.comments {
		out[i] = c.clone()
	}
	return out
}

// Lookup returns the comment with the given id
func (s *Snapshot) Lookup(id string) (Comment, error) {
	i, ok := s.byID[id]
	if !ok {
		return Comment{}, perr.WithField(perr.NotFoundf("comment %q not found", id), "id")
	}
	return s.comments[i].clone(), nil
}
