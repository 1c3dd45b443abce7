package resolve

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"
)

// DefaultFormat is the strftime template used when none is configured.
const DefaultFormat = "%Y-%m-%d_%H.%M.%S"

// Formatter renders resolved timestamps through a strftime template.
// The template is opaque to the resolvers: the same formatter runs
// regardless of which resolver produced the timestamp, so output names
// are indistinguishable by source.
type Formatter struct {
	f *strftime.Strftime
}

// NewFormatter compiles pattern once so an invalid template fails fast,
// before any file is touched.
func NewFormatter(pattern string) (*Formatter, error) {
	f, err := strftime.New(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid date format %q: %w", pattern, err)
	}
	return &Formatter{f: f}, nil
}

func (f *Formatter) Format(t time.Time) string {
	return f.f.FormatString(t)
}
