package ui

import (
	"time"

	"github.com/renato0307/hotline/internal/domain"
)

// Messages fed in from the realtime listener. The command running the
// program forwards them with tea.Program.Send.

// EventMsg carries one realtime channel message
type EventMsg struct {
	Message domain.Message
}

// ConnectedMsg reports that the realtime channel is up
type ConnectedMsg struct{}

// DisconnectedMsg reports that the realtime channel dropped and when the
// next attempt happens
type DisconnectedMsg struct {
	Err     error
	RetryIn time.Duration
}

// Results of commands started by the model

type logsLoadedMsg struct {
	entries []domain.LogEntry
	err     error
	seq     int
}

type logsClearedMsg struct {
	deleted int64
	err     error
}

type exportedMsg struct {
	err  error
	path string
}

type clearStatusMsg struct {
	seq int
}

type tipTickMsg struct{}
