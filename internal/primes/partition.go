package primes

// Chunk is a half-open index range [From, To) over the input list.
type Chunk struct {
	From int
	To   int
}

// Len returns the number of indices covered by the chunk.
func (c Chunk) Len() int { return c.To - c.From }

// Empty reports whether the chunk covers no index.
func (c Chunk) Empty() bool { return c.To <= c.From }

// Partition splits [0, n) into exactly w contiguous, non-overlapping chunks
// of ceil(n/w) indices each. The last non-empty chunk may be shorter; when
// n < w the trailing chunks are empty. A w below 1 is treated as 1 and a
// negative n as 0.
func Partition(n, w int) []Chunk {
	if w < 1 {
		w = 1
	}
	if n < 0 {
		n = 0
	}
	size := (n + w - 1) / w
	chunks := make([]Chunk, w)
	for i := range chunks {
		chunks[i] = Chunk{From: min(i*size, n), To: min((i+1)*size, n)}
	}
	return chunks
}
