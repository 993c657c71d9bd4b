// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package prompt

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	relayerrors "github.com/flairlab/reddit-relay/internal/errors"
)

const listHeight = 14

var (
	// Title style - bold cyan, the key being labeled
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true).
			Padding(0, 1)
)

// choiceItem is one selectable row: either a candidate display string or the
// trailing none-of-the-above option.
type choiceItem struct {
	label string
	none  bool
}

func (i choiceItem) Title() string {
	if i.none {
		return NoneOption
	}
	return i.label
}

func (i choiceItem) Description() string { return "" }
func (i choiceItem) FilterValue() string { return i.Title() }

// chooserModel is the BubbleTea model for a single selection prompt.
type chooserModel struct {
	list     list.Model
	choice   *choiceItem
	canceled bool
}

func newChooserModel(message string, options []string) chooserModel {
	items := make([]list.Item, 0, len(options)+1)
	for _, opt := range options {
		items = append(items, choiceItem{label: opt})
	}
	items = append(items, choiceItem{none: true})

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	l := list.New(items, delegate, 0, listHeight)
	l.Title = message
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return chooserModel{list: l}
}

func (m chooserModel) Init() tea.Cmd { return nil }

func (m chooserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(choiceItem); ok {
				m.choice = &item
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m chooserModel) View() string {
	return "\n" + m.list.View()
}

// TUIChooser renders options as a scrollable terminal list. Enter selects,
// esc or ctrl+c cancels the whole session.
type TUIChooser struct{}

// Choose implements the Chooser interface.
func (TUIChooser) Choose(message string, options []string) (string, error) {
	final, err := tea.NewProgram(newChooserModel(message, options)).Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	model, ok := final.(chooserModel)
	if !ok || model.canceled || model.choice == nil {
		return "", relayerrors.ErrCanceled
	}
	if model.choice.none {
		return "", nil
	}
	return model.choice.label, nil
}
