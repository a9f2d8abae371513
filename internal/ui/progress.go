package ui

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
)

// Status is the outcome reported for one finished item.
type Status int

const (
	StatusOK Status = iota
	StatusSkipped
	StatusFailed
)

// Progress prints one "[n/total] status label" line per finished item. It is
// safe for concurrent use and a nil *Progress discards everything.
type Progress struct {
	out       io.Writer
	total     int
	completed atomic.Int64
	mu        sync.Mutex
	marks     map[Status]string
}

// NewProgress creates a progress tracker for total items. Colors are used
// only when out is a terminal.
func NewProgress(out io.Writer, total int) *Progress {
	r := lipgloss.NewRenderer(out)
	return &Progress{
		out:   out,
		total: total,
		marks: map[Status]string{
			StatusOK:      r.NewStyle().Foreground(lipgloss.Color("10")).Render("ok"),
			StatusSkipped: r.NewStyle().Foreground(lipgloss.Color("8")).Render("skip"),
			StatusFailed:  r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Render("FAIL"),
		},
	}
}

// Done marks one item finished and prints the running count.
func (p *Progress) Done(label string, status Status) {
	if p == nil {
		return
	}
	n := p.completed.Add(1)
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, "[%d/%d] %s %s\n", n, p.total, p.marks[status], label)
}

// Completed returns how many items have finished.
func (p *Progress) Completed() int {
	if p == nil {
		return 0
	}
	return int(p.completed.Load())
}

// Log prints a line between progress lines.
func (p *Progress) Log(format string, args ...any) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}
