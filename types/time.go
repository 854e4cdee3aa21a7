package types

import (
	"time"

	"github.com/Fossilia/eospyo/errors"
	"github.com/Fossilia/eospyo/wire"
)

// UnixTimestamp is a seconds-precision UTC timestamp. On the wire it is the
// whole seconds since the Unix epoch as an unsigned 32-bit scalar.
type UnixTimestamp struct {
	t time.Time
}

// NewUnixTimestamp converts t to UTC and drops sub-second precision (silent
// normalization, not an error). Timestamps whose epoch seconds fall outside
// the unsigned 32-bit range cannot be represented on the wire and are
// rejected.
func NewUnixTimestamp(t time.Time) (UnixTimestamp, error) {
	t = t.UTC().Truncate(time.Second)
	secs := t.Unix()
	if secs < 0 || secs > 0xffffffff {
		return UnixTimestamp{}, errors.Range("unixtimestamp", t.Format(time.RFC3339), 0, 0xffffffff)
	}
	return UnixTimestamp{t: t}, nil
}

// Time returns the wrapped time, UTC and truncated to whole seconds.
func (v UnixTimestamp) Time() time.Time {
	return v.t
}

func (v UnixTimestamp) Pack(w *wire.Writer) {
	w.WriteU32(uint32(v.t.Unix()))
}

func (v UnixTimestamp) Size() int { return 4 }

// UnpackUnixTimestamp reads 4 bytes as unsigned seconds since the epoch.
func UnpackUnixTimestamp(r *wire.Reader) (UnixTimestamp, error) {
	secs, err := r.ReadU32()
	if err != nil {
		return UnixTimestamp{}, errors.Truncated("unixtimestamp", err)
	}
	return UnixTimestamp{t: time.Unix(int64(secs), 0).UTC()}, nil
}

// DecodeUnixTimestamp decodes a UnixTimestamp from the front of data.
func DecodeUnixTimestamp(data []byte) (UnixTimestamp, int, error) {
	return decodeOne(data, UnpackUnixTimestamp)
}
