package feedback

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	perr "insighthub/internal/platform/errors"
)

type record struct {
	Comment
	// Age places the comment relative to the decode instant ("2h", "48h")
	Age string `json:"age,omitempty"`
}

type document struct {
	Comments []record `json:"comments"`
}

// Decode reads a {"comments": [...]} document. A record may carry an "age" duration
// instead of "created_at"; it is resolved against now. Unknown fields are rejected
func Decode(r io.Reader, now time.Time) ([]Comment, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, perr.JSONErrf("empty document")
		}
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "decode comments")
	}
	if dec.More() {
		return nil, perr.JSONErrf("trailing data after document")
	}

	out := make([]Comment, 0, len(doc.Comments))
	for i, rec := range doc.Comments {
		c := rec.Comment
		if age := strings.TrimSpace(rec.Age); age != "" {
			d, err := time.ParseDuration(age)
			if err != nil || d < 0 {
				return nil, perr.WithField(perr.JSONErrf("%s: invalid age %q", ref(c, i), age), "age")
			}
			c.CreatedAt = now.Add(-d)
		}
		out = append(out, c)
	}
	return out, nil
}
