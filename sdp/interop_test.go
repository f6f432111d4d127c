package sdp

import (
	"strconv"
	"testing"

	psdp "github.com/pion/sdp/v3"
	gosdp "github.com/pixelbender/go-sdp/sdp"
	"github.com/stretchr/testify/require"
)

const audioOffer = `v=0
o=jdoe 2890844526 2890842807 IN IP4 10.47.16.5
s=SDP Seminar
i=A Seminar on the session description protocol
u=http://www.example.com/seminars/sdp.pdf
e=j.doe@example.com (Jane Doe)
p=+1 617 555-6011
c=IN IP4 224.2.17.12
b=AS:2000
t=3034423619 3042462419
a=recvonly
m=audio 49170 UDP/TLS/RTP/SAVPF 0 8 97
a=rtpmap:97 iLBC/8000
m=video 51372 UDP/TLS/RTP/SAVPF 99 100
a=rtpmap:99 h263-1998/90000
a=rtpmap:100 H264/90000
a=rtcp-fb:100 nack pli
a=fmtp:100 profile-level-id=42c01f;level-asymmetry-allowed=1
`

func collect[L Line](lines []Line) []L {
	var out []L
	for _, l := range lines {
		if v, ok := l.(L); ok {
			out = append(out, v)
		}
	}
	return out
}

func TestInteropPixelbender(t *testing.T) {
	report, err := NewParser(Config{FailOnWarning: true}).Check(audioOffer)
	require.NoError(t, err)
	require.True(t, report.Accepted(), "%v", report.Err())

	sess, err := gosdp.ParseString(audioOffer)
	require.NoError(t, err)

	origins := collect[*Origin](report.Lines)
	require.Len(t, origins, 1)
	require.Equal(t, sess.Origin.Username, origins[0].Username)
	require.EqualValues(t, sess.Origin.SessionID, origins[0].SessID)
	require.EqualValues(t, sess.Origin.SessionVersion, origins[0].SessVersion)
	require.Equal(t, sess.Origin.Address, origins[0].UnicastAddr)

	media := collect[*Media](report.Lines)
	require.Len(t, media, len(sess.Media))
	for i, m := range sess.Media {
		require.Equal(t, m.Type, string(media[i].Media))
		require.EqualValues(t, m.Port, media[i].Port)
		require.Equal(t, m.Proto, string(media[i].Proto))

		payloads, ok := media[i].Formats.(PayloadTypes)
		require.True(t, ok)
		require.Len(t, m.Format, len(payloads))
		for j, f := range m.Format {
			require.EqualValues(t, f.Payload, payloads[j])
		}
	}
}

func TestInteropPion(t *testing.T) {
	for _, doc := range []string{audioOffer, webrtcOffer} {
		report, err := NewParser(Config{FailOnWarning: true}).Check(doc)
		require.NoError(t, err)
		require.True(t, report.Accepted(), "%v", report.Err())

		var sd psdp.SessionDescription
		require.NoError(t, sd.Unmarshal([]byte(doc)))

		origins := collect[*Origin](report.Lines)
		require.Len(t, origins, 1)
		require.Equal(t, sd.Origin.SessionID, origins[0].SessID)
		require.Equal(t, sd.Origin.SessionVersion, origins[0].SessVersion)
		require.Equal(t, sd.Origin.AddressType, origins[0].Addrtype)

		attrs := collect[*Attribute](report.Lines)
		count := len(sd.Attributes)
		for _, md := range sd.MediaDescriptions {
			count += len(md.Attributes)
		}
		require.Equal(t, count, len(attrs))

		media := collect[*Media](report.Lines)
		require.Len(t, media, len(sd.MediaDescriptions))
		for i, md := range sd.MediaDescriptions {
			require.Equal(t, md.MediaName.Media, string(media[i].Media))
			require.EqualValues(t, md.MediaName.Port.Value, media[i].Port)

			var formats []string
			switch f := media[i].Formats.(type) {
			case PayloadTypes:
				for _, pt := range f {
					formats = append(formats, strconv.Itoa(int(pt)))
				}
			case FormatNames:
				formats = f
			}
			require.Equal(t, md.MediaName.Formats, formats)
		}
	}
}
