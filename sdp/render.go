package sdp

import (
	"strconv"
	"sync"

	"github.com/rs/zerolog"
)

type buffer struct {
	data []byte
}

func (b *buffer) writeUint64(v uint64) *buffer {
	b.data = strconv.AppendUint(b.data, v, 10)
	return b
}

func (b *buffer) writeString(v string) *buffer {
	b.data = append(b.data, v...)
	return b
}

func (b *buffer) writeLabel(field byte) *buffer {
	b.data = append(b.data, fieldName(field)...)
	b.data = append(b.data, ':', ' ')
	return b
}

func (b *buffer) writeSep() *buffer {
	b.data = append(b.data, ',', ' ')
	return b
}

var bufferPool = sync.Pool{
	New: func() interface{} { return &buffer{} },
}

// render formats a line through a pooled buffer and returns the result.
func render(fn func(b *buffer)) string {
	b := bufferPool.Get().(*buffer)
	fn(b)
	s := string(b.data)
	b.data = b.data[:0]
	bufferPool.Put(b)
	return s
}

func (b *buffer) writeAddress(a Address) *buffer {
	return b.writeString(string(a.Nettype)).writeSep().writeString(a.Addrtype).writeSep().writeString(a.UnicastAddr)
}

func (a *Attribute) String() string {
	return render(func(b *buffer) {
		b.writeLabel(AttributeField).writeString(a.Name).writeSep().writeString(a.Value)
	})
}

func (bw *Bandwidth) String() string {
	return render(func(b *buffer) {
		b.writeLabel(BandwidthField).writeString(bw.Type).writeSep().writeUint64(bw.Value)
	})
}

func (c *Connection) String() string {
	return render(func(b *buffer) {
		b.writeLabel(ConnectionField).writeAddress(c.Address)
	})
}

func (o *Origin) String() string {
	return render(func(b *buffer) {
		b.writeLabel(OriginField).writeString(o.Username).writeSep().writeUint64(o.SessID).writeSep().writeUint64(o.SessVersion).writeSep().writeAddress(o.Address)
	})
}

func (t *Timing) String() string {
	return render(func(b *buffer) {
		b.writeLabel(TimingField).writeUint64(t.Start).writeSep().writeUint64(t.Stop)
	})
}

func (m *Media) String() string {
	return render(func(b *buffer) {
		b.writeLabel(MediaDescField).writeString(string(m.Media)).writeSep().writeUint64(uint64(m.Port)).writeSep().writeString(string(m.Proto)).writeSep()
		if m.Formats != nil {
			b.writeString(m.Formats.String())
		}
	})
}

func (t *Text) String() string {
	return render(func(b *buffer) {
		b.writeLabel(t.Name).writeString(t.Value)
	})
}

func (u *Uint) String() string {
	return render(func(b *buffer) {
		b.writeLabel(u.Name).writeUint64(u.Value)
	})
}

func (a Address) MarshalZerologObject(e *zerolog.Event) {
	e.Str("nettype", string(a.Nettype)).Str("addrtype", a.Addrtype).Str("addr", a.UnicastAddr)
}

func (a *Attribute) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", a.Name).Str("value", a.Value)
}

func (bw *Bandwidth) MarshalZerologObject(e *zerolog.Event) {
	e.Str("bwtype", bw.Type).Uint64("bandwidth", bw.Value)
}

func (c *Connection) MarshalZerologObject(e *zerolog.Event) {
	c.Address.MarshalZerologObject(e)
}

func (o *Origin) MarshalZerologObject(e *zerolog.Event) {
	e.Str("username", o.Username).Uint64("sess_id", o.SessID).Uint64("sess_version", o.SessVersion)
	o.Address.MarshalZerologObject(e)
}

func (t *Timing) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("start", t.Start).Uint64("stop", t.Stop)
}

func (m *Media) MarshalZerologObject(e *zerolog.Event) {
	e.Str("media", string(m.Media)).Uint16("port", m.Port).Str("proto", string(m.Proto))
	switch f := m.Formats.(type) {
	case PayloadTypes:
		ints := make([]uint, len(f))
		for i, pt := range f {
			ints[i] = uint(pt)
		}
		e.Uints("formats", ints)
	case FormatNames:
		e.Strs("formats", f)
	}
}

func (t *Text) MarshalZerologObject(e *zerolog.Event) {
	e.Str("value", t.Value)
}

func (u *Uint) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("value", u.Value)
}
