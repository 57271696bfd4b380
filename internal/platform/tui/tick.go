// Package tui runs games in the terminal with Bubble Tea, locally or over
// SSH via Wish. It maps keys and mouse presses to core actions, drives the
// tick loop and records puzzle clears.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastModelID atomic.Int64

// nextModelID returns a process-wide unique model ID. SSH sessions create
// models concurrently.
func nextModelID() int64 {
	return lastModelID.Add(1)
}

// TickMsg is sent to trigger a game step. ID names the model whose tick
// chain produced it; other models ignore it.
type TickMsg struct {
	ID   int64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick for model id at
// the specified rate.
func tickCmd(id int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
