package ui

import (
	"contraption/tim/tstruct"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func Start(level tstruct.Level) error {
	browser := CreatePartBrowser(level)
	if _, err := tea.NewProgram(browser).Run(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
