package layout

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes every placement in order. Two layouts with the same
// fingerprint place the same pieces and targets at the same positions.
func (l Layout) Fingerprint() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 64)
	for _, p := range l.Pieces {
		buf = buf[:0]
		buf = append(buf, 'p')
		buf = strconv.AppendInt(buf, int64(p.Shape), 10)
		buf = append(buf, '|')
		buf = strconv.AppendInt(buf, int64(p.Material), 10)
		buf = appendFloats(buf, p.Position.X, p.Position.Y, p.Rotation)
		buf = append(buf, p.Annotation...)
		buf = append(buf, '\n')
		_, _ = d.Write(buf)
	}
	for _, t := range l.Targets {
		buf = buf[:0]
		buf = append(buf, 't')
		buf = strconv.AppendInt(buf, int64(t.Kind), 10)
		buf = appendFloats(buf, t.Position.X, t.Position.Y)
		buf = append(buf, '\n')
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}

func appendFloats(buf []byte, vs ...float64) []byte {
	for _, v := range vs {
		buf = append(buf, '|')
		buf = strconv.AppendFloat(buf, v, 'f', 4, 64)
	}
	return append(buf, '|')
}

// Supports returns the number of invisible-support placements.
func (l Layout) Supports() int {
	n := 0
	for _, p := range l.Pieces {
		if p.Material == InvisibleSupport {
			n++
		}
	}
	return n
}
