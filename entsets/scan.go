package entsets

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// scanner reads the whitespace/line-oriented entity-set format. The
// first failure sticks: later reads return zero values and Err reports
// the original cause, so parsing code stays linear.
type scanner struct {
	r   *bufio.Reader
	err error
}

func newScanner(r io.Reader) *scanner {
	return &scanner{r: bufio.NewReader(r)}
}

// Err returns the first error encountered, if any.
func (s *scanner) Err() error { return s.err }

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

// skipSpace consumes leading whitespace, newlines included.
func (s *scanner) skipSpace() {
	if s.err != nil {
		return
	}
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			s.err = err
			return
		}
		if !isSpace(b) {
			s.err = s.r.UnreadByte()
			return
		}
	}
}

// SkipComments consumes whitespace and any full lines beginning with '#'.
func (s *scanner) SkipComments() {
	for {
		s.skipSpace()
		if s.err != nil {
			return
		}
		b, err := s.r.Peek(1)
		if err != nil || b[0] != '#' {
			return
		}
		if _, err := s.r.ReadString('\n'); err != nil && err != io.EOF {
			s.err = err
			return
		}
	}
}

// Token reads the next whitespace-delimited token.
func (s *scanner) Token() string {
	s.skipSpace()
	if s.err != nil {
		return ""
	}
	var sb strings.Builder
	for {
		b, err := s.r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			s.err = err
			return ""
		}
		if isSpace(b) {
			s.err = s.r.UnreadByte()
			break
		}
		sb.WriteByte(b)
	}
	return sb.String()
}

// Int reads the next token as an integer.
func (s *scanner) Int() int {
	tok := s.Token()
	if s.err != nil {
		return 0
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		s.err = err
		return 0
	}
	return n
}

// Line skips whitespace and returns the rest of the current line with
// any DOS carriage return stripped. Set names are read this way, so
// they may contain interior spaces.
func (s *scanner) Line() string {
	s.skipSpace()
	if s.err != nil {
		return ""
	}
	text, err := s.r.ReadString('\n')
	if err != nil && err != io.EOF {
		s.err = err
		return ""
	}
	return strings.TrimRight(text, "\r\n")
}
