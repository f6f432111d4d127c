// Package sdpcheck validates offer/answer session descriptions with the
// line parser in package sdp.
package sdpcheck

import (
	"errors"

	"github.com/nostressdev/sdpcheck/sdp"
)

type SessionDescription struct {
	Type SDPType
	SDP  string
	// Lines holds the parsed lines of SDP in order.
	Lines []sdp.Line
	// Warnings lists unsupported values that were tolerated.
	Warnings []*sdp.ParseError
}

// NewSessionDescription checks text and returns the validated description.
// A rollback may carry an empty body; every other type must hold an
// acceptable SDP document.
func NewSessionDescription(t SDPType, text string, failOnWarning bool) (*SessionDescription, error) {
	if _, err := ParseSDPType(string(t)); err != nil {
		return nil, err
	}

	s := &SessionDescription{Type: t, SDP: text}
	if t == SDPTypeRollback && text == "" {
		return s, nil
	}

	report, err := sdp.NewParser(sdp.Config{FailOnWarning: failOnWarning}).Check(text)
	if errors.Is(err, sdp.ErrEmptyDocument) {
		return nil, makeError(ErrInvalidSessionDescription, "empty "+string(t))
	}
	if err != nil {
		return nil, err
	}
	if !report.Accepted() {
		return nil, wrapError(ErrInvalidSessionDescription, "malformed "+string(t), report.Err())
	}

	s.Lines = report.Lines
	s.Warnings = report.Warnings
	return s, nil
}

// Media returns the media lines of the description.
func (s *SessionDescription) Media() []*sdp.Media {
	var media []*sdp.Media
	for _, l := range s.Lines {
		if m, ok := l.(*sdp.Media); ok {
			media = append(media, m)
		}
	}
	return media
}
