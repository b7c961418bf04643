package runner

import (
	"bytes"
	"context"
	"io"
)

// scriptReader feeds one step per read and remembers where the game's output
// stood at each read, so output can be split per step. Once the steps run out
// it cancels the run instead of letting the game spin on empty input.
type scriptReader struct {
	steps   []TestStep
	next    int
	pending []byte
	out     *bytes.Buffer
	marks   []int
	cancel  context.CancelFunc
}

func newScriptReader(steps []TestStep, out *bytes.Buffer, cancel context.CancelFunc) *scriptReader {
	return &scriptReader{steps: steps, out: out, cancel: cancel}
}

func (s *scriptReader) Read(p []byte) (int, error) {
	if len(s.pending) == 0 {
		if s.next >= len(s.steps) {
			s.marks = append(s.marks, s.out.Len())
			s.cancel()
			return 0, io.EOF
		}
		s.marks = append(s.marks, s.out.Len())
		s.pending = []byte(s.steps[s.next].Input + "\n")
		s.next++
	}
	n := copy(p, s.pending)
	s.pending = s.pending[n:]
	return n, nil
}

func (s *scriptReader) exhausted() bool {
	return s.next >= len(s.steps) && len(s.pending) == 0
}

// outputFor returns what the game printed in response to step i, up to the
// next prompt.
func (s *scriptReader) outputFor(i int) string {
	if i >= len(s.marks) {
		return ""
	}
	end := s.out.Len()
	if i+1 < len(s.marks) {
		end = s.marks[i+1]
	}
	return s.out.String()[s.marks[i]:end]
}
