// Package session runs the interactive inspect-and-repair loop.
//
// A Session is a small finite-state machine driven one line of input at a
// time:
//
//	AwaitingCode --q/EOF--> Terminated
//	AwaitingCode --known code--> DisplayingInfo
//	DisplayingInfo --criteria met--> AwaitingCode
//	DisplayingInfo --criteria not met--> AwaitingRepairChoice
//	AwaitingRepairChoice --r--> ApplyAndReport --> AwaitingCode
//	AwaitingRepairChoice --anything else--> AwaitingCode
//
// Malformed and unknown codes report an error and stay in AwaitingCode.
// Input and output are plain io.Reader / io.Writer so tests can script a
// whole session.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/JonMunkholm/suitctl/internal/core"
	"github.com/JonMunkholm/suitctl/internal/logging"
)

// Catalog is the part of the catalog store a session needs.
type Catalog interface {
	Get(code string) (core.Suit, bool)
	Update(suit core.Suit) error
}

// State is a session state.
type State int

const (
	StateAwaitingCode State = iota
	StateDisplayingInfo
	StateAwaitingRepairChoice
	StateApplyAndReport
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAwaitingCode:
		return "awaiting_code"
	case StateDisplayingInfo:
		return "displaying_info"
	case StateAwaitingRepairChoice:
		return "awaiting_repair_choice"
	case StateApplyAndReport:
		return "apply_and_report"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session holds the state of one interactive run.
type Session struct {
	catalog   Catalog
	input     *bufio.Reader
	view      *View
	tally     *Tally
	increment int
	logger    *slog.Logger

	state   State
	current core.Suit
}

// Option configures a Session.
type Option func(*Session)

// WithIncrement sets the repair increment. Defaults to core.DefaultRepairIncrement.
func WithIncrement(n int) Option {
	return func(s *Session) {
		s.increment = n
	}
}

// WithLogger sets the session logger. Without it, Run uses the logger
// carried by its context.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithTally makes the session count into t instead of a fresh tally.
func WithTally(t *Tally) Option {
	return func(s *Session) {
		if t != nil {
			s.tally = t
		}
	}
}

// New creates a session reading commands from in and writing the transcript to out.
func New(catalog Catalog, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		catalog:   catalog,
		input:     bufio.NewReader(in),
		view:      NewView(out),
		tally:     NewTally(),
		increment: core.DefaultRepairIncrement,
		state:     StateAwaitingCode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Tally returns the session's repair tally.
func (s *Session) Tally() *Tally {
	return s.tally
}

// Run steps the session until the user quits or ctx is cancelled.
// Reaching the end of input counts as quitting.
func (s *Session) Run(ctx context.Context) error {
	if s.logger == nil {
		s.logger = logging.WithFields(ctx, "component", "session")
	}
	s.logger.Debug("session started", "increment", s.increment)

	for s.state != StateTerminated {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Step(); err != nil {
			return err
		}
	}

	s.logger.Info("session ended", "repairs", s.tally.Total())
	return nil
}

// Step performs a single state transition.
func (s *Session) Step() error {
	if s.logger == nil {
		s.logger = slog.Default()
	}

	switch s.state {
	case StateAwaitingCode:
		return s.awaitCode()
	case StateDisplayingInfo:
		s.displayInfo()
		return nil
	case StateAwaitingRepairChoice:
		return s.awaitRepairChoice()
	case StateApplyAndReport:
		s.applyAndReport()
		return nil
	case StateTerminated:
		return nil
	default:
		return fmt.Errorf("session: unknown state %v", s.state)
	}
}

func (s *Session) awaitCode() error {
	code, err := s.readLine(promptCode)
	if errors.Is(err, io.EOF) || strings.EqualFold(code, "q") {
		s.view.Message(msgGoodbye)
		s.state = StateTerminated
		return nil
	}
	if err != nil {
		return err
	}

	if !core.ValidateCode(code) {
		s.view.Error(msgInvalidFormat)
		return nil
	}

	suit, ok := s.catalog.Get(code)
	if !ok {
		s.view.Error(msgNotFound)
		return nil
	}

	s.current = suit
	s.state = StateDisplayingInfo
	return nil
}

func (s *Session) displayInfo() {
	s.view.SuitInfo(s.current)

	if core.MeetsCriteria(s.current) {
		s.view.Success(msgUsable)
		s.view.Blank()
		s.endTurn()
		return
	}

	s.view.Message(msgNotUsable)
	s.view.RepairOption(s.increment)
	s.state = StateAwaitingRepairChoice
}

func (s *Session) awaitRepairChoice() error {
	choice, err := s.readLine(promptChoice)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	if strings.EqualFold(choice, "r") {
		s.state = StateApplyAndReport
		return nil
	}

	s.view.Message(msgCancelled)
	s.view.Blank()
	s.endTurn()
	return nil
}

func (s *Session) applyAndReport() {
	before := s.current.Durability
	repaired := s.current.Repaired(s.increment)

	if err := s.catalog.Update(repaired); err != nil {
		s.logger.Error("repair not saved", "code", repaired.Code, "error", err)
		s.view.Error("Repair not saved: " + core.MapError(err).String())
		s.view.Blank()
		s.endTurn()
		return
	}

	s.tally.Inc(repaired.Category)
	s.logger.Info("suit repaired",
		"code", repaired.Code,
		"category", repaired.Category.String(),
		"before", before,
		"after", repaired.Durability,
	)
	s.view.Repaired(before, repaired.Durability)
	s.endTurn()
}

// endTurn shows the tally and returns to AwaitingCode.
func (s *Session) endTurn() {
	s.view.Tally(s.tally)
	s.current = core.Suit{}
	s.state = StateAwaitingCode
}

// readLine prompts and reads one line with surrounding whitespace removed.
// Lines have no length limit; an oversized line is just invalid input.
// Returns io.EOF once input is exhausted.
func (s *Session) readLine(prompt string) (string, error) {
	s.view.Prompt(prompt)
	line, err := s.input.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	if errors.Is(err, io.EOF) {
		s.view.Blank()
		return "", io.EOF
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
