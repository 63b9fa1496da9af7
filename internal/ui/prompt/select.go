// Package prompt implements the interactive project picker.
// The picker renders on stderr so stdout stays a clean script stream for
// the evaluating shell.
package prompt

import (
	"os"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"

	"github.com/raphi011/pj/internal/ui/styles"
)

// SelectResult holds the result of a selection prompt.
type SelectResult struct {
	Value     string
	Index     int
	Cancelled bool
}

// Item is a selectable entry with an optional description line.
type Item struct {
	Label       string
	Description string
}

type listItem struct {
	item  Item
	index int
}

func (i listItem) Title() string       { return i.item.Label }
func (i listItem) Description() string { return i.item.Description }
func (i listItem) FilterValue() string { return i.item.Label }

type selectModel struct {
	list      list.Model
	done      bool
	cancelled bool
	selected  int
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(listItem); ok {
				m.selected = item.index
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(m.list.View())
}

// CanPrompt reports whether an interactive prompt can run: both stdin and
// stderr must be terminals. Stdout is typically captured by command
// substitution, so it is deliberately not checked.
func CanPrompt() bool {
	for _, f := range []*os.File{os.Stdin, os.Stderr} {
		if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			return false
		}
	}
	return true
}

// Select shows a filterable list selection prompt and returns the user's
// choice.
func Select(title string, items []Item) (SelectResult, error) {
	if len(items) == 0 {
		return SelectResult{Cancelled: true}, nil
	}

	entries := make([]list.Item, len(items))
	showDesc := false
	for i, it := range items {
		entries[i] = listItem{item: it, index: i}
		if it.Description != "" {
			showDesc = true
		}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = showDesc
	if !showDesc {
		delegate.SetSpacing(0)
	}
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true)
	delegate.Styles.NormalDesc = lipgloss.NewStyle().
		Foreground(styles.Muted)

	height := len(items) + 6
	if showDesc {
		height = len(items)*2 + 6
	}
	l := list.New(entries, delegate, 60, min(height, 20))
	l.Title = title
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	model := selectModel{
		list:     l,
		selected: -1,
	}
	profile := colorprofile.Detect(os.Stderr, os.Environ())
	p := tea.NewProgram(model,
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	finalModel, err := p.Run()
	if err != nil {
		return SelectResult{}, err
	}
	m := finalModel.(selectModel)

	if m.cancelled || m.selected < 0 || m.selected >= len(items) {
		return SelectResult{Cancelled: true}, nil
	}

	return SelectResult{
		Value: items[m.selected].Label,
		Index: m.selected,
	}, nil
}
