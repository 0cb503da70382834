package themed

import tea "github.com/charmbracelet/bubbletea"

// Static is plain text that never reads the theme. A provider never sends it
// a ChangedMsg; Changes exists so tests can prove that.
type Static struct {
	text    string
	changes int
}

// NewStatic returns a Static showing text.
func NewStatic(text string) *Static {
	return &Static{text: text}
}

// Changes counts the ChangedMsg values this model has received.
func (s *Static) Changes() int {
	return s.changes
}

func (s *Static) Init() tea.Cmd { return nil }

func (s *Static) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(ChangedMsg); ok {
		s.changes++
	}
	return s, nil
}

func (s *Static) View() string { return s.text }
