package span

// Stream is a forward-only cursor over the tokens of one parse.
//
// Next returns the next token and true, or the zero token and false once the
// stream is exhausted. A stream is never rewound and must not be shared
// between goroutines.
type Stream[R comparable] interface {
	Next() (Token[R], bool)
}

// SliceStream streams a fixed slice of tokens.
type SliceStream[R comparable] struct {
	tokens []Token[R]
	next   int
}

// NewSliceStream returns a stream over tokens. The slice is not copied.
func NewSliceStream[R comparable](tokens []Token[R]) *SliceStream[R] {
	return &SliceStream[R]{tokens: tokens}
}

// Next implements Stream.
func (s *SliceStream[R]) Next() (Token[R], bool) {
	if s.next >= len(s.tokens) {
		var zero Token[R]
		return zero, false
	}
	tok := s.tokens[s.next]
	s.next++
	return tok, true
}

// Remaining reports how many tokens have not been pulled yet.
func (s *SliceStream[R]) Remaining() int {
	return len(s.tokens) - s.next
}

// Drain pulls every remaining token from s.
// The result is nil when the stream is already exhausted.
func Drain[R comparable](s Stream[R]) []Token[R] {
	var rest []Token[R]
	for {
		tok, ok := s.Next()
		if !ok {
			return rest
		}
		rest = append(rest, tok)
	}
}
