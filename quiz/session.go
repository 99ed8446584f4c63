// Package quiz holds the interactive console exercises. Each loop reads one
// line per turn and stops on its sentinel input or at end of input.
package quiz

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"go-fretboard/debug"
	"go-fretboard/theory"
)

// Rand is the random source the quizzes draw prompts from
type Rand interface {
	IntN(n int) int
}

// Session owns the console for the duration of a quiz
type Session struct {
	ID      uuid.UUID
	in      *bufio.Scanner
	out     io.Writer
	rng     Rand
	now     func() time.Time
	catalog *theory.Catalog
}

// Option configures a Session
type Option func(*Session)

// WithRand replaces the random source
func WithRand(r Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithClock replaces the wall clock used for timing answers
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithCatalog replaces the scale catalog used by the mode quiz
func WithCatalog(c *theory.Catalog) Option {
	return func(s *Session) { s.catalog = c }
}

// NewSession reads answers from in and writes prompts to out
func NewSession(in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		ID:      uuid.New(),
		in:      bufio.NewScanner(in),
		out:     out,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:     time.Now,
		catalog: theory.DefaultCatalog(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score counts graded answers. It lives only as long as the session.
type Score struct {
	Correct int
	Total   int
}

func (s Score) String() string {
	return fmt.Sprintf("%d/%d", s.Correct, s.Total)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) println(args ...any) {
	fmt.Fprintln(s.out, args...)
}

// readLine returns the next line; ok is false at end of input
func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Session) log(format string, args ...any) {
	debug.Log("quiz", "[%s] "+format, append([]any{s.ID.String()[:8]}, args...)...)
}

func pick[T any](rng Rand, items []T) T {
	return items[rng.IntN(len(items))]
}
