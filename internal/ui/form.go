package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/reel/internal/movies"
)

type formField int

const (
	fieldTitle formField = iota
	fieldOpeningText
	fieldReleaseDate
	fieldCount
)

// movieForm collects the fields of a new movie. It does not validate or
// reset its inputs; submitting simply reads whatever was typed.
type movieForm struct {
	title       textinput.Model
	openingText textarea.Model
	releaseDate textinput.Model

	focus  formField
	active bool
}

func newMovieForm() movieForm {
	title := textinput.New()
	title.Prompt = ""
	title.Placeholder = "Title"
	title.CharLimit = 200

	opening := textarea.New()
	opening.Prompt = ""
	opening.Placeholder = "Opening text"
	opening.ShowLineNumbers = false
	opening.CharLimit = 2000
	opening.SetHeight(3)

	release := textinput.New()
	release.Prompt = ""
	release.Placeholder = "YYYY-MM-DD"
	release.CharLimit = 32

	f := movieForm{title: title, openingText: opening, releaseDate: release}
	f.blurAll()
	return f
}

// Focus activates the form on its current field.
func (f *movieForm) Focus() tea.Cmd {
	f.active = true
	return f.focusField(f.focus)
}

// Blur deactivates the form, keeping its contents.
func (f *movieForm) Blur() {
	f.active = false
	f.blurAll()
}

// Active reports whether the form has keyboard focus.
func (f movieForm) Active() bool {
	return f.active
}

// Next moves focus to the following field, wrapping around.
func (f *movieForm) Next() tea.Cmd {
	return f.focusField((f.focus + 1) % fieldCount)
}

// Prev moves focus to the previous field, wrapping around.
func (f *movieForm) Prev() tea.Cmd {
	return f.focusField((f.focus + fieldCount - 1) % fieldCount)
}

// OnLastField reports whether the release date input has focus.
func (f movieForm) OnLastField() bool {
	return f.focus == fieldReleaseDate
}

// Value assembles the movie from the raw inputs.
func (f movieForm) Value() movies.NewMovie {
	return movies.NewMovie{
		Title:       f.title.Value(),
		OpeningText: f.openingText.Value(),
		ReleaseDate: f.releaseDate.Value(),
	}
}

// SetWidth resizes the inputs to fit width columns.
func (f *movieForm) SetWidth(width int) {
	inner := width - 20
	if inner < 10 {
		inner = 10
	}
	f.title.Width = inner
	f.releaseDate.Width = inner
	f.openingText.SetWidth(inner)
}

// Update routes msg to the focused input.
func (f movieForm) Update(msg tea.Msg) (movieForm, tea.Cmd) {
	if !f.active {
		return f, nil
	}
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldOpeningText:
		f.openingText, cmd = f.openingText.Update(msg)
	case fieldReleaseDate:
		f.releaseDate, cmd = f.releaseDate.Update(msg)
	}
	return f, cmd
}

// View renders the labelled inputs.
func (f movieForm) View(styles Styles) string {
	rows := []struct {
		label string
		field formField
		view  string
	}{
		{"Title", fieldTitle, f.title.View()},
		{"Opening Text", fieldOpeningText, f.openingText.View()},
		{"Release Date", fieldReleaseDate, f.releaseDate.View()},
	}

	var b strings.Builder
	for i, row := range rows {
		label := styles.Label.Render(row.label)
		if f.active && f.focus == row.field {
			label = styles.FocusedLabel.Render(row.label)
		}
		// Multi-line inputs keep their continuation lines aligned with the first.
		lines := strings.Split(row.view, "\n")
		pad := strings.Repeat(" ", styles.Label.GetWidth())
		for j, line := range lines {
			if j == 0 {
				b.WriteString(label)
			} else {
				b.WriteString("\n")
				b.WriteString(pad)
			}
			b.WriteString(line)
		}
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (f *movieForm) focusField(field formField) tea.Cmd {
	f.blurAll()
	f.focus = field
	if !f.active {
		return nil
	}
	switch field {
	case fieldTitle:
		return f.title.Focus()
	case fieldOpeningText:
		return f.openingText.Focus()
	default:
		return f.releaseDate.Focus()
	}
}

func (f *movieForm) blurAll() {
	f.title.Blur()
	f.openingText.Blur()
	f.releaseDate.Blur()
}
