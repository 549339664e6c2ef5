package domain

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// kindToken is the substring of a source URL naming the particulate feed.
// Sibling feeds are found by substituting their own token for it.
const kindToken = "PM2.5"

var kindTokens = map[Kind]string{
	KindPM25: kindToken,
	KindO3:   "O3",
}

var validate = validator.New()

// Source describes one diplomatic post by the URL of its PM2.5 feed.
type Source struct {
	Name string `json:"name,omitempty" yaml:"name"`
	URL  string `json:"url" yaml:"url" validate:"required,url,contains=PM2.5"`
}

// Validate checks that the URL is absolute and carries the kind token.
func (s Source) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid source %q: %w", s.URL, err)
	}
	return nil
}

// KindURLs derives one feed URL per supported kind.
func (s Source) KindURLs() map[Kind]string {
	urls := make(map[Kind]string, len(Kinds))
	for _, k := range Kinds {
		urls[k] = strings.Replace(s.URL, kindToken, kindTokens[k], 1)
	}
	return urls
}
