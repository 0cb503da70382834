package theme

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/shadeworks/shade/internal/config"
	"github.com/shadeworks/shade/internal/domain"
	"github.com/shadeworks/shade/internal/format"
	"github.com/shadeworks/shade/internal/log"
	"github.com/shadeworks/shade/internal/paths"
	"github.com/shadeworks/shade/internal/store"
	"github.com/shadeworks/shade/internal/themesource"
	"github.com/shadeworks/shade/internal/ui"
	"github.com/shadeworks/shade/internal/ui/style"
)

type Deps struct {
	ReadLines  func() ([]string, error)
	WriteLines func([]string) error
	Set        func([]string, string, string) ([]string, bool)
	Lock       func(func() error) error
	Get        func(string) (string, bool)
	GetAll     func() (map[string]string, error)

	// NewSource returns the persisted theme source. Each command builds a
	// fresh one so it sees the file as it is now.
	NewSource func() *themesource.Config
	OpenStore func() (domain.ThemeEventStore, error)

	Logger domain.Logger
	Style  domain.Styler

	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
	Pager      func(string)
	FormatTime func(time.Time) string

	IsTerminal func() bool
	RunProgram func(tea.Model) error
}

func DefaultDeps() Deps {
	logger := defaultLogger()
	provider := config.NewProvider()

	return Deps{
		ReadLines:  config.ReadLines,
		WriteLines: config.WriteLines,
		Set:        config.Set,
		Lock:       config.WithLock,
		Get:        config.Get,
		GetAll:     config.GetAll,
		NewSource: func() *themesource.Config {
			return themesource.NewConfig(provider, themesource.WithLogger(logger))
		},
		OpenStore: func() (domain.ThemeEventStore, error) {
			s, err := store.New(paths.DBPath())
			if err != nil {
				return nil, err
			}
			return s, nil
		},
		Logger:     logger,
		Style:      style.NewStyler(),
		Printf:     fmt.Printf,
		Println:    fmt.Println,
		Pager:      ui.NewWriter(ui.WithConfigGetter(config.Get)).Pager,
		FormatTime: format.Full,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		RunProgram: func(m tea.Model) error {
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

func defaultLogger() domain.Logger {
	if l := log.GetLogger(); l != nil {
		return l
	}
	return log.NopLogger{}
}
