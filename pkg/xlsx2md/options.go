// Package xlsx2md converts .xlsx workbooks into Markdown documents.
package xlsx2md

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Options configures conversion behavior.
type Options struct {
	// IncludeMetadata specifies whether to append the document properties section.
	// If nil, defaults to true.
	IncludeMetadata *bool
	// Now returns the conversion timestamp. If nil, time.Now is used.
	Now func() time.Time
	// Logger receives per-sheet progress. If nil, logging is discarded.
	Logger logrus.FieldLogger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldIncludeMetadata returns whether to render the metadata section.
func (o Options) ShouldIncludeMetadata() bool {
	if o.IncludeMetadata != nil {
		return *o.IncludeMetadata
	}
	return true
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
