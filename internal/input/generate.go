package input

import (
	"bufio"
	"io"
	"math/rand/v2"
	"strconv"
)

// Generated value mix: 5% zeros, 5% small negatives, the rest uniform in
// [GenerateMin, GenerateMax].
const (
	GenerateMin = 2
	GenerateMax = 1500000
)

// Generate writes n newline-terminated integers drawn from rng to w.
func Generate(w io.Writer, n int, rng *rand.Rand) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)
	for range n {
		var v int64
		switch r := rng.Float64(); {
		case r < 0.05:
			v = 0
		case r < 0.10:
			v = -1 - rng.Int64N(1000)
		default:
			v = GenerateMin + rng.Int64N(GenerateMax-GenerateMin+1)
		}
		buf = strconv.AppendInt(buf[:0], v, 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
