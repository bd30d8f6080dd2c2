package session

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"github.com/cwbudde/algo-dsp-viz/dsp/signal"
	"github.com/zeebo/blake3"
)

// digest returns a cache key for an engine call: the operation name, its
// scalar parameters and every input point set, each length-prefixed.
func digest(op string, params []float64, inputs ...[]signal.Point) string {
	buf := appendLen(nil, len(op))
	buf = append(buf, op...)

	buf = appendLen(buf, len(params))
	for _, v := range params {
		buf = appendFloat(buf, v)
	}

	buf = appendLen(buf, len(inputs))
	for _, points := range inputs {
		buf = appendLen(buf, len(points))
		for _, p := range points {
			buf = appendFloat(appendFloat(buf, p.X), p.Y)
		}
	}

	sum := blake3.Sum256(buf)
	return hex.EncodeToString(sum[:])
}

func appendLen(buf []byte, n int) []byte {
	return binary.BigEndian.AppendUint64(buf, uint64(n))
}

func appendFloat(buf []byte, v float64) []byte {
	return binary.BigEndian.AppendUint64(buf, math.Float64bits(v))
}
