package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/reel/internal/movies"
	"github.com/five82/reel/internal/prefs"
	"github.com/five82/reel/internal/rating"
	"github.com/five82/reel/internal/state"
)

// RatingFetcher is implemented by *rating.Client.
type RatingFetcher interface {
	Fetch(ctx context.Context) (rating.Result, error)
}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Collection movies.Collection
	Rating     RatingFetcher // nil skips the rating fetch
	Logger     zerolog.Logger
	Endpoint   string // shown in the header
	LogPath    string
	Refresh    time.Duration // zero disables periodic refresh
	ThemeName  string
	Compact    bool
	PrefsPath  string
}

const (
	defaultWidth  = 80
	defaultHeight = 24
	logTailLines  = 500

	// rows used by everything around the movie pane
	chromeHeight = 14
)

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	collection movies.Collection
	rating     RatingFetcher
	logger     zerolog.Logger
	endpoint   string
	logPath    string
	refresh    time.Duration
	prefsPath  string

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	width    int
	height   int
	compact  bool
	showHelp bool

	// Movie pane
	view state.View
	list viewport.Model

	// Add-movie form
	form movieForm

	// Activity log overlay
	showLogs bool
	logs     viewport.Model
	logErr   error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:        ctx,
		collection: opts.Collection,
		rating:     opts.Rating,
		logger:     opts.Logger,
		endpoint:   opts.Endpoint,
		logPath:    opts.LogPath,
		refresh:    opts.Refresh,
		prefsPath:  prefsPath,
		theme:      GetTheme(opts.ThemeName),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		compact:    opts.Compact,
		list:       viewport.New(defaultWidth, 1),
		logs:       viewport.New(defaultWidth, 1),
		form:       newMovieForm(),
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return mountCmd
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case mountMsg:
		cmds := []tea.Cmd{m.startFetch(), m.startRating()}
		if m.refresh > 0 {
			cmds = append(cmds, refreshTickCmd(m.refresh))
		}
		return m, tea.Batch(cmds...)

	case refreshTickMsg:
		return m, tea.Batch(m.startFetch(), refreshTickCmd(m.refresh))

	case moviesFetchedMsg:
		m.handleMoviesFetched(msg)
		return m, nil

	case movieAddedMsg:
		m.handleMovieAdded(msg)
		return m, nil

	case ratingFetchedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("rating fetch failed")
			return m, nil
		}
		msg.result.Log(m.logger)
		return m, nil

	case spinner.TickMsg:
		if !m.view.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case logLinesMsg:
		m.logErr = msg.err
		m.logs.SetContent(strings.Join(msg.lines, "\n"))
		m.logs.GotoBottom()
		return m, nil
	}

	if m.form.Active() {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showLogs {
		return m.renderLogs()
	}
	return m.renderMain()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.showLogs {
		return m.handleLogsKey(msg)
	}

	if m.form.Active() {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.syncList()
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		m.showLogs = true
		return m, readLogCmd(m.logPath, logTailLines)

	case key.Matches(msg, m.keys.FetchMovies):
		return m, m.startFetch()

	case key.Matches(msg, m.keys.FetchRating):
		return m, m.startRating()

	case key.Matches(msg, m.keys.AddMovie):
		return m, m.form.Focus()

	case key.Matches(msg, m.keys.Compact):
		m.compact = !m.compact
		m.savePrefs()
		m.syncList()
		return m, nil

	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Leave):
		m.form.Blur()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		return m, m.form.Next()

	case key.Matches(msg, m.keys.PrevField):
		return m, m.form.Prev()

	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()

	case msg.Type == tea.KeyEnter && m.form.OnLastField():
		return m, m.submit()

	case msg.Type == tea.KeyEnter && m.form.focus == fieldTitle:
		return m, m.form.Next()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Leave, m.keys.Logs, m.keys.Quit):
		m.showLogs = false
		return m, nil
	case key.Matches(msg, m.keys.FetchMovies):
		// reload the tail
		return m, readLogCmd(m.logPath, logTailLines)
	}
	var cmd tea.Cmd
	m.logs, cmd = m.logs.Update(msg)
	return m, cmd
}

// startFetch begins a list fetch. Loading is set before the request leaves.
func (m *Model) startFetch() tea.Cmd {
	seq := m.view.BeginFetch()
	m.syncList()
	cmds := []tea.Cmd{fetchMoviesCmd(m.ctx, m.collection, seq)}
	if m.view.InFlight() == 1 {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m *Model) startRating() tea.Cmd {
	if m.rating == nil {
		m.logger.Warn().Msg("rating fetch skipped: no api key configured")
		return nil
	}
	return fetchRatingCmd(m.ctx, m.rating)
}

func (m *Model) submit() tea.Cmd {
	movie := m.form.Value()
	m.logger.Debug().Str("title", movie.Title).Msg("submitting movie")
	return addMovieCmd(m.ctx, m.collection, movie)
}

func (m *Model) handleMoviesFetched(msg moviesFetchedMsg) {
	m.view.FinishFetch(msg.seq, msg.movies, msg.err)
	if msg.err != nil {
		event := m.logger.Warn().Err(msg.err).Uint64("seq", msg.seq)
		var apiErr *movies.APIError
		if errors.As(msg.err, &apiErr) {
			event = event.Str("detail", apiErr.Detail())
		}
		event.Msg("fetch movies failed")
	} else {
		m.logger.Debug().Uint64("seq", msg.seq).Int("count", len(msg.movies)).Msg("movies loaded")
	}
	m.syncList()
}

func (m *Model) handleMovieAdded(msg movieAddedMsg) {
	if msg.err != nil {
		m.logger.Warn().Err(msg.err).Str("title", msg.movie.Title).Msg("add movie failed")
		return
	}
	event := m.logger.Info().Str("title", msg.movie.Title)
	if len(msg.response) > 0 {
		event = event.RawJSON("response", msg.response)
	}
	event.Msg("movie added")
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	m.form.SetWidth(width)
	m.logs.Width = width - 4
	m.logs.Height = max(height-6, 3)
	m.syncList()
}

// syncList pushes the current movies into the list viewport.
func (m *Model) syncList() {
	inner := max(m.width-4, 10)
	m.list.Width = inner
	m.list.Height = max(m.height-chromeHeight, 3)
	if m.view.Content() == state.ContentList {
		m.list.SetContent(renderMovieList(m.view.Movies, m.theme.Styles(), inner, m.compact))
		return
	}
	m.list.SetContent("")
	m.list.GotoTop()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Compact: m.compact}); err != nil {
		m.logger.Warn().Err(err).Msg("save prefs failed")
	}
}

// contentView renders the movie pane body for the current state.
func (m Model) contentView() string {
	if m.view.Content() == state.ContentList {
		return m.list.View()
	}
	return renderMessage(m.view, m.theme.Styles())
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	styles := m.theme.Styles()
	sectionWidth := max(m.width-2, 10)

	var b strings.Builder
	b.WriteString(m.renderHeader(styles))
	b.WriteString("\n")

	formStyle := styles.Section
	if m.form.Active() {
		formStyle = styles.Focused
	}
	b.WriteString(formStyle.Width(sectionWidth).Render(m.form.View(styles)))
	b.WriteString("\n")

	b.WriteString(m.renderButtons(styles))
	b.WriteString("\n")

	b.WriteString(styles.Section.Width(sectionWidth).Render(m.contentView()))
	b.WriteString("\n")

	bindings := m.keys.ShortHelp()
	if m.form.Active() {
		bindings = m.keys.formHelp()
	}
	b.WriteString(styles.Footer.Render(m.help.ShortHelpView(bindings)))
	return b.String()
}

func (m Model) renderHeader(styles Styles) string {
	parts := []string{styles.Title.Render("reel")}
	if m.endpoint != "" {
		parts = append(parts, styles.FaintText.Render(m.endpoint))
	}
	if m.view.Loading {
		parts = append(parts, styles.WarningText.Render(m.spinner.View()))
	}
	if !m.view.LastUpdated.IsZero() {
		parts = append(parts, styles.MutedText.Render(fmt.Sprintf("updated %s", m.view.LastUpdated.Format("15:04:05"))))
	}
	return " " + strings.Join(parts, "  ")
}

func (m Model) renderButtons(styles Styles) string {
	button := func(k, label string) string {
		return styles.AccentText.Render("["+k+"]") + " " + styles.Text.Render(label)
	}
	row := []string{button("f", "Fetch Movies"), button("a", "Add Movie"), button("m", "MOVIE")}
	if m.rating == nil {
		row[2] = styles.FaintText.Render("[m] MOVIE (no api key)")
	}
	return " " + strings.Join(row, "   ")
}

func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	title := styles.Title.Render("Activity log")
	if m.logPath != "" {
		title += "  " + styles.FaintText.Render(m.logPath)
	}
	body := m.logs.View()
	if m.logErr != nil {
		body = styles.DangerText.Render(m.logErr.Error())
	} else if strings.TrimSpace(body) == "" {
		body = styles.MutedText.Render("No log entries yet.")
	}
	footer := styles.Footer.Render(m.help.ShortHelpView([]key.Binding{m.keys.Leave, m.keys.FetchMovies, m.keys.Up, m.keys.Down}))
	return " " + title + "\n" + styles.Section.Width(max(m.width-2, 10)).Render(body) + "\n" + footer
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	if opts.Collection == nil {
		return fmt.Errorf("ui requires a movie collection")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
		opts.Context = ctx
	}

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
