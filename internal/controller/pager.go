package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// pagerChromeLines is the height taken by the pager header and footer.
const pagerChromeLines = 2

// pagerModel is a Bubble Tea model scrolling a fixed block of text.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{title: title, content: content}
}

func (p pagerModel) Init() tea.Cmd {
	return nil
}

func (p pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		case "g", "home":
			p.viewport.GotoTop()
			return p, nil
		case "G", "end":
			p.viewport.GotoBottom()
			return p, nil
		}
	case tea.WindowSizeMsg:
		height := max(msg.Height-pagerChromeLines, 1)

		if !p.ready {
			p.viewport = viewport.New(msg.Width, height)
			p.viewport.SetContent(p.content)
			p.ready = true
		} else {
			p.viewport.Width = msg.Width
			p.viewport.Height = height
		}

		return p, nil
	}

	var cmd tea.Cmd

	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

func (p pagerModel) View() string {
	if !p.ready {
		return "Loading…\n"
	}

	header := titleStyle.Render(p.title)
	footer := mutedStyle.Render(fmt.Sprintf("%3.f%%  q to quit", p.viewport.ScrollPercent()*100))

	return header + "\n" + p.viewport.View() + "\n" + footer
}
