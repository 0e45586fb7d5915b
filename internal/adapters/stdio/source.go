package stdio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/void-bridge/internal/ports"
)

const DefaultMaxLineBytes = 16 << 20

// ErrLineTooLong is returned for a single request line above the configured limit.
// The oversized line is consumed so reading can continue with the next one.
var ErrLineTooLong = ports.ErrLineTooLong

type Source struct {
	reader  *bufio.Reader
	maxLine int
	done    bool
}

var _ ports.RequestSource = (*Source)(nil)

func NewSource(r io.Reader, maxLineBytes int) *Source {
	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}
	return &Source{reader: bufio.NewReader(r), maxLine: maxLineBytes}
}

// Next returns the next line that is not blank after trimming, trimmed.
// It returns io.EOF once input is exhausted.
func (s *Source) Next() (string, error) {
	for !s.done {
		line, tooLong, err := s.readLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("read request line: %w", err)
			}
			s.done = true
		}
		if tooLong {
			return "", fmt.Errorf("%w (%d bytes)", ErrLineTooLong, s.maxLine)
		}

		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed, nil
		}
	}

	return "", io.EOF
}

// readLine reads through the next newline, keeping at most maxLine bytes.
func (s *Source) readLine() (string, bool, error) {
	var b strings.Builder
	tooLong := false

	for {
		chunk, err := s.reader.ReadSlice('\n')
		if !tooLong {
			if b.Len()+len(chunk) > s.maxLine {
				tooLong = true
				b.Reset()
			} else {
				b.Write(chunk)
			}
		}

		switch {
		case err == nil:
			return b.String(), tooLong, nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		default:
			return b.String(), tooLong, err
		}
	}
}
