package correct

// Stream is a lazy, one-pass, non-restartable source of pipeline
// tokens. Next returns the next token and true, or nil and false once
// the stream is exhausted. Implementations are not safe for concurrent
// use; each sentence gets its own stream chain.
type Stream interface {
	Next() (*Token, bool)
}

type sliceStream struct {
	toks []*Token
	i    int
}

// NewStream returns a Stream over the given tokens.
func NewStream(toks []*Token) Stream {
	return &sliceStream{toks: toks}
}

func (s *sliceStream) Next() (*Token, bool) {
	if s.i >= len(s.toks) {
		return nil, false
	}
	t := s.toks[s.i]
	s.i++
	return t, true
}

// Collect drains a stream into a slice.
func Collect(s Stream) []*Token {
	var toks []*Token
	for t, ok := s.Next(); ok; t, ok = s.Next() {
		toks = append(toks, t)
	}
	return toks
}
