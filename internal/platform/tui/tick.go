// Package tui runs games in the terminal with Bubble Tea, locally or over SSH.
// It owns the tick loop, key mapping, score persistence and menus.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// GameModel that scheduled it, so a stale tick from a previous game cannot
// start a second loop.
type TickMsg struct {
	Loop uint64
	Time time.Time
}

var tickLoops atomic.Uint64

// newTickLoop returns a fresh loop identifier.
func newTickLoop() uint64 {
	return tickLoops.Add(1)
}

// tickCmd returns a command that sends a TickMsg after one tick interval.
// Non-positive rates fall back to 60 ticks per second.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, Time: t}
	})
}
