package sdpcheck

import (
	"errors"
	"strings"
	"testing"

	"github.com/nostressdev/sdpcheck/sdp"
	"github.com/stretchr/testify/require"
)

const offer = `v=0
o=- 0 2 IN IP4 127.0.0.1
s=-
c=IN IP4 127.0.0.1
t=0 0
a=ice-options:trickle ice2
m=audio 9 UDP/TLS/RTP/SAVPF 111
a=rtpmap:111 opus/48000
a=maxptime:120
a=mid:0
m=application 9 UDP/DTLS/SCTP webrtc-datachannel
a=sctp-port:5000
a=tls-id:abc
a=mid:1
`

func TestNewSessionDescription(t *testing.T) {
	s, err := NewSessionDescription(SDPTypeOffer, offer, true)
	require.NoError(t, err)
	require.Equal(t, SDPTypeOffer, s.Type)
	require.Len(t, s.Lines, strings.Count(offer, "\n"))
	require.Empty(t, s.Warnings)

	media := s.Media()
	require.Len(t, media, 2)
	require.Equal(t, sdp.MediaAudio, media[0].Media)
	require.Equal(t, sdp.FormatNames{"webrtc-datachannel"}, media[1].Formats)
}

func TestNewSessionDescriptionWarnings(t *testing.T) {
	text := offer + "a=extmap-allow-mixed\n"

	s, err := NewSessionDescription(SDPTypeAnswer, text, false)
	require.NoError(t, err)
	require.Len(t, s.Warnings, 1)
	require.Equal(t, "a=extmap-allow-mixed", s.Warnings[0].Line)

	_, err = NewSessionDescription(SDPTypeAnswer, text, true)
	require.Error(t, err)
	require.True(t, errors.Is(err, sdp.ErrUnsupported))
	require.Contains(t, err.Error(), ErrInvalidSessionDescription)
}

func TestNewSessionDescriptionInvalid(t *testing.T) {
	_, err := NewSessionDescription(SDPTypeOffer, strings.Replace(offer, "v=0", "v=1", 1), false)
	require.Error(t, err)
	require.True(t, errors.Is(err, sdp.ErrLine))

	_, err = NewSessionDescription(SDPTypePranswer, "", false)
	require.ErrorContains(t, err, ErrInvalidSessionDescription)

	_, err = NewSessionDescription("hello", offer, false)
	require.ErrorContains(t, err, ErrTypeError)
}

func TestNewSessionDescriptionRollback(t *testing.T) {
	s, err := NewSessionDescription(SDPTypeRollback, "", true)
	require.NoError(t, err)
	require.Empty(t, s.Lines)
}
