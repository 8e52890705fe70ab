package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/rope/internal/anim"
)

type frameMsg time.Time
type pulseMsg time.Time
type modelLoadedMsg struct{}
type revealMsg struct{}
type statusExpiredMsg struct {
	seq int
}

const (
	pulseInterval  = 800 * time.Millisecond
	statusLifetime = 5 * time.Second
)

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/anim.FPS, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func pulseCmd() tea.Cmd {
	return tea.Tick(pulseInterval, func(t time.Time) tea.Msg {
		return pulseMsg(t)
	})
}

func afterCmd(d time.Duration, msg tea.Msg) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

func statusExpiryCmd(seq int) tea.Cmd {
	return afterCmd(statusLifetime, statusExpiredMsg{seq: seq})
}
