package stdio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/void-bridge/internal/ports"
)

// Sink writes one compact JSON object per line and flushes after each.
type Sink struct {
	w   *bufio.Writer
	enc *json.Encoder
}

var _ ports.ResponseSink = (*Sink)(nil)

func NewSink(w io.Writer) *Sink {
	buffered := bufio.NewWriter(w)
	enc := json.NewEncoder(buffered)
	enc.SetEscapeHTML(false)

	return &Sink{w: buffered, enc: enc}
}

func (s *Sink) Write(response any) error {
	// Encode marshals fully before writing, so a failed encode leaves no partial line.
	if err := s.enc.Encode(response); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("flush response: %w", err)
	}

	return nil
}
