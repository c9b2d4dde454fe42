// Package filter narrows a comment sequence by sentiment tag and keyword substring
package filter

import (
	"strings"

	"insighthub/internal/core/feedback"
	"insighthub/internal/core/normalize"
	perr "insighthub/internal/platform/errors"
)

// Criteria selects comments. A zero value keeps everything
type Criteria struct {
	// Sentiment keeps exact tag matches when set
	Sentiment feedback.Sentiment `json:"sentiment,omitempty"`
	// Keyword keeps comments whose full text or summary contains it, ignoring case
	Keyword string `json:"keyword,omitempty"`
}

// IsZero reports whether c filters nothing
func (c Criteria) IsZero() bool {
	return c.Sentiment == "" && strings.TrimSpace(c.Keyword) == ""
}

// Validate fails with an invalid filter error for an unknown sentiment tag
func (c Criteria) Validate() error {
	if c.Sentiment != "" && !c.Sentiment.Valid() {
		return perr.WithField(perr.InvalidFilterf("unknown sentiment %q", string(c.Sentiment)), "sentiment")
	}
	return nil
}

// Apply keeps the comments matching every set criterion, in input order. A blank
// keyword is no keyword filter. No match is an empty result, not an error
func Apply(comments []feedback.Comment, c Criteria) ([]feedback.Comment, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.IsZero() {
		return comments, nil
	}

	needle := normalize.Fold(c.Keyword)
	out := make([]feedback.Comment, 0, len(comments))
	for _, cm := range comments {
		if c.Sentiment != "" && cm.Sentiment != c.Sentiment {
			continue
		}
		if needle != "" && !normalize.Contains(cm.FullText, needle) && !normalize.Contains(cm.Summary, needle) {
			continue
		}
		out = append(out, cm)
	}
	return out, nil
}

// ToggleSentiment selects s, or clears the sentiment when s is already selected
func (c Criteria) ToggleSentiment(s feedback.Sentiment) Criteria {
	if c.Sentiment == s {
		c.Sentiment = ""
	} else {
		c.Sentiment = s
	}
	return c
}

// ToggleKeyword selects kw, or clears the keyword when the same one (ignoring case) is selected
func (c Criteria) ToggleKeyword(kw string) Criteria {
	if c.Keyword != "" && normalize.Fold(c.Keyword) == normalize.Fold(kw) {
		c.Keyword = ""
	} else {
		c.Keyword = kw
	}
	return c
}

// Clear drops every criterion
func (c Criteria) Clear() Criteria { return Criteria{} }
