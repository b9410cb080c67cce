package mock

import (
	"fmt"
	"sync"
)

// Sink records everything an operation writes to its output.
type Sink struct {
	mu       sync.Mutex
	Items    []any
	Infos    []string
	Warnings []string
	Verboses []string
}

func (s *Sink) Emit(item any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Items = append(s.Items, item)
}

func (s *Sink) Info(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Infos = append(s.Infos, fmt.Sprintf(format, args...))
}

func (s *Sink) Warn(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
}

func (s *Sink) Verbose(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Verboses = append(s.Verboses, fmt.Sprintf(format, args...))
}

// Prompter answers confirmation prompts with a fixed reply and records the
// prompts it was shown.
type Prompter struct {
	Reply   bool
	Err     error
	Prompts []string
}

func (p *Prompter) Confirm(prompt string) (bool, error) {
	p.Prompts = append(p.Prompts, prompt)
	return p.Reply, p.Err
}
