package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).PaddingRight(2)
	valueStyle = lipgloss.NewStyle().Bold(true)
	noneStyle  = lipgloss.NewStyle().Faint(true).Italic(true)
)

// Show renders the effective filter configuration.
type Show struct{}

// Run executes the show command.
func (s *Show) Run(ctx context.Context) error {
	filter := loggerFrom(ctx).Filter()

	ignored := noneStyle.Render("(none)")
	if list := filter.Ignored(); len(list) > 0 {
		ignored = valueStyle.Render(strings.Join(list, "\n"))
	}

	keys := keyStyle.Render(strings.Join([]string{"threshold", "match", "ignored"}, "\n"))
	values := lipgloss.JoinVertical(lipgloss.Left,
		valueStyle.Render(filter.Threshold().String()),
		valueStyle.Render(filter.Match().String()),
		ignored,
	)

	_, err := fmt.Fprintln(outputFrom(ctx), lipgloss.JoinHorizontal(lipgloss.Top, keys, values))

	return err
}
