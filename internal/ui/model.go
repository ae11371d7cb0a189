package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/logging"
	"github.com/renato0307/hotline/internal/theme"
)

const (
	requestTimeout  = 10 * time.Second
	statusClearTime = 5 * time.Second
	tipInterval     = 15 * time.Second

	// header, detail line and the two footer lines
	chromeHeight = 4
)

// LogSource is the slice of the hotline API the viewer reads from
type LogSource interface {
	ClearLogs(ctx context.Context) (int64, error)
	ExportLogs(ctx context.Context, filter domain.LogFilter, w io.Writer) error
	Logs(ctx context.Context, filter domain.LogFilter) ([]domain.LogEntry, error)
}

type uiState int

const (
	stateList uiState = iota
	stateConfirmingClear
	stateHelp
	stateSearching
)

// Options configure the viewer
type Options struct {
	// ExportDir receives CSV exports; "" means the working directory
	ExportDir string
	HookType  domain.HookType
	Keyword   string
	Limit     int
	SessionID string
	// Now is the clock used for export names and relative times
	Now func() time.Time
}

// Model is the live event viewer
type Model struct {
	connErr    error
	connected  bool
	ctx        context.Context
	entries    []domain.LogEntry // Newest first, already filtered
	exportDir  string
	filter     domain.LogFilter
	height     int
	helpScreen *HelpScreen
	hookTypes  []domain.HookType // "" first, meaning every type
	keys       KeyMap
	loadSeq    int
	loading    bool
	now        func() time.Time
	retryIn    time.Duration
	search     textinput.Model
	source     LogSource
	state      uiState
	status     string
	statusErr  error
	statusSeq  int
	table      table.Model
	tipIndex   int
	width      int
}

// NewModel creates the viewer. ctx bounds every request it makes.
func NewModel(ctx context.Context, source LogSource, opts Options) *Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "message or tool name"
	search.CharLimit = 200

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(theme.ColorSecondary).Bold(true)
	styles.Selected = styles.Selected.Foreground(theme.ColorHighlight).Background(theme.ColorPrimary).Bold(false)

	t := table.New(
		table.WithColumns(columnsFor(80)),
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithStyles(styles),
	)

	return &Model{
		ctx:       ctx,
		exportDir: opts.ExportDir,
		filter: domain.LogFilter{
			HookType:  opts.HookType,
			Keyword:   opts.Keyword,
			SessionID: opts.SessionID,
			Limit:     domain.LogFilter{Limit: opts.Limit}.Normalized().Limit,
		},
		hookTypes: append([]domain.HookType{""}, domain.AllHookTypes()...),
		keys:      NewKeyMap(),
		now:       now,
		search:    search,
		source:    source,
		state:     stateList,
		table:     t,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.load(), tipTick())
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		if m.helpScreen != nil {
			m.helpScreen.Update(msg)
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit.Binding) {
			return m, tea.Quit
		}

	case EventMsg:
		m.handleEvent(msg.Message)
		return m, nil

	case ConnectedMsg:
		reconnect := m.connErr != nil
		m.connected = true
		m.connErr = nil
		m.retryIn = 0
		// Events sent while offline are only in the ledger
		if reconnect {
			return m, m.load()
		}
		return m, nil

	case DisconnectedMsg:
		m.connected = false
		m.connErr = msg.Err
		m.retryIn = msg.RetryIn
		return m, nil

	case logsLoadedMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, m.setError(fmt.Errorf("failed to load events: %w", msg.err))
		}
		m.entries = msg.entries
		m.refreshRows()
		return m, nil

	case logsClearedMsg:
		if msg.err != nil {
			return m, m.setError(fmt.Errorf("failed to clear events: %w", msg.err))
		}
		m.entries = nil
		m.refreshRows()
		return m, m.setStatus(fmt.Sprintf("Cleared %s events", humanize.Comma(msg.deleted)))

	case exportedMsg:
		if msg.err != nil {
			return m, m.setError(fmt.Errorf("failed to export events: %w", msg.err))
		}
		return m, m.setStatus("Exported to " + msg.path)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = nil
		}
		return m, nil

	case tipTickMsg:
		m.tipIndex++
		return m, tipTick()
	}

	switch m.state {
	case stateConfirmingClear:
		return m.updateConfirmingClear(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case stateSearching:
		return m.updateSearching(msg)
	default:
		return m.updateList(msg)
	}
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit.Binding):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help.Binding):
			m.helpScreen = NewHelpScreen(&m.keys)
			m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
			m.state = stateHelp
			return m, nil

		case key.Matches(msg, m.keys.Filter.Binding):
			m.search.SetValue(m.filter.Keyword)
			m.search.CursorEnd()
			m.state = stateSearching
			m.resize()
			return m, m.search.Focus()

		case key.Matches(msg, m.keys.NextHookType.Binding):
			m.cycleHookType(1)
			return m, m.load()

		case key.Matches(msg, m.keys.PrevHookType.Binding):
			m.cycleHookType(-1)
			return m, m.load()

		case key.Matches(msg, m.keys.ClearFilter.Binding):
			if m.filter.HookType == "" && m.filter.Keyword == "" {
				return m, nil
			}
			m.filter.HookType = ""
			m.filter.Keyword = ""
			return m, m.load()

		case key.Matches(msg, m.keys.Refresh.Binding):
			return m, m.load()

		case key.Matches(msg, m.keys.Export.Binding):
			return m, m.export()

		case key.Matches(msg, m.keys.ClearLogs.Binding):
			m.state = stateConfirmingClear
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) updateSearching(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.filter.Keyword = strings.TrimSpace(m.search.Value())
			m.search.Blur()
			m.state = stateList
			m.resize()
			return m, m.load()
		case tea.KeyEsc:
			m.search.Blur()
			m.state = stateList
			m.resize()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Model) updateConfirmingClear(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch strings.ToLower(keyMsg.String()) {
	case "y":
		m.state = stateList
		return m, m.clear()
	case "n", "esc", "q":
		m.state = stateList
	}
	return m, nil
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.helpScreen.Update(msg)
	if m.helpScreen.Completed {
		m.helpScreen = nil
		m.state = stateList
		return m, nil
	}
	return m, cmd
}

// handleEvent applies a realtime message to the visible list
func (m *Model) handleEvent(msg domain.Message) {
	switch msg.Type {
	case domain.MessageClearLogs:
		m.entries = nil
		m.refreshRows()

	case domain.MessageNewLog:
		if msg.Data == nil || !m.filter.Matches(*msg.Data) {
			return
		}
		entry := *msg.Data
		if slices.ContainsFunc(m.entries, func(e domain.LogEntry) bool { return e.ID == entry.ID }) {
			return
		}

		m.entries = append([]domain.LogEntry{entry}, m.entries...)
		if len(m.entries) > m.filter.Limit {
			m.entries = m.entries[:m.filter.Limit]
		}

		// Keep the selection on the same event unless it is at the top
		cursor := m.table.Cursor()
		m.refreshRows()
		if cursor > 0 {
			m.table.SetCursor(min(cursor+1, len(m.entries)-1))
		}

	default:
		logging.Logger.Debug("Ignoring realtime message", "type", msg.Type)
	}
}

func (m *Model) cycleHookType(step int) {
	i := slices.Index(m.hookTypes, m.filter.HookType)
	n := len(m.hookTypes)
	m.filter.HookType = m.hookTypes[((i+step)%n+n)%n]
}

func (m *Model) load() tea.Cmd {
	m.loadSeq++
	m.loading = true
	seq, filter, ctx, source := m.loadSeq, m.filter, m.ctx, m.source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()
		entries, err := source.Logs(ctx, filter)
		return logsLoadedMsg{entries: entries, err: err, seq: seq}
	}
}

func (m *Model) clear() tea.Cmd {
	ctx, source := m.ctx, m.source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()
		deleted, err := source.ClearLogs(ctx)
		return logsClearedMsg{deleted: deleted, err: err}
	}
}

func (m *Model) export() tea.Cmd {
	ctx, source, filter := m.ctx, m.source, m.filter
	path := filepath.Join(m.exportDir, fmt.Sprintf("hotline-logs-%s.csv", m.now().Format("20060102-150405")))
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()
		return exportedMsg{err: exportTo(ctx, source, filter, path), path: path}
	}
}

func exportTo(ctx context.Context, source LogSource, filter domain.LogFilter, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := source.ExportLogs(ctx, filter, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = nil
	return clearStatusAfter(m.statusSeq)
}

func (m *Model) setError(err error) tea.Cmd {
	logging.Logger.Warn("Viewer error", "error", err)
	m.statusSeq++
	m.status = ""
	m.statusErr = err
	return clearStatusAfter(m.statusSeq)
}

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusClearTime, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func tipTick() tea.Cmd {
	return tea.Tick(tipInterval, func(time.Time) tea.Msg {
		return tipTickMsg{}
	})
}

func (m *Model) resize() {
	height := m.height - chromeHeight
	if m.state == stateSearching {
		height--
	}
	m.table.SetHeight(max(height, 3))
	m.table.SetWidth(m.width)
	m.table.SetColumns(columnsFor(m.width))
	m.search.Width = max(m.width-4, 10)
}

// columnsFor sizes the table so the message column takes what is left
func columnsFor(width int) []table.Column {
	cols := []table.Column{
		{Title: "Time", Width: 14},
		{Title: "Hook", Width: 12},
		{Title: "Tool", Width: 12},
		{Title: "Session", Width: 8},
	}
	// Every column carries one cell of padding on each side
	used := 0
	for _, c := range cols {
		used += c.Width + 2
	}
	return append(cols, table.Column{Title: "Message", Width: max(width-used-2, 10)})
}

func (m *Model) refreshRows() {
	now := m.now()
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			formatTimestamp(e.Timestamp, now),
			string(e.HookType),
			e.ToolNameOr("-"),
			shortID(e.SessionID),
			strings.Join(strings.Fields(e.MessageOr("")), " "),
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// formatTimestamp shows the clock time for today and the date otherwise
func formatTimestamp(ts, now time.Time) string {
	ts = ts.In(now.Location())
	y1, m1, d1 := ts.Date()
	y2, m2, d2 := now.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return ts.Format("15:04:05")
	}
	return ts.Format("Jan 02 15:04")
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// selected returns the entry under the cursor
func (m *Model) selected() (domain.LogEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return domain.LogEntry{}, false
	}
	return m.entries[i], true
}

// View implements tea.Model
func (m *Model) View() string {
	if m.state == stateHelp && m.helpScreen != nil {
		return m.helpScreen.View()
	}

	var b strings.Builder
	b.WriteString(m.headerView() + "\n")
	if m.state == stateSearching {
		b.WriteString(m.search.View() + "\n")
	}
	if len(m.entries) == 0 {
		b.WriteString(m.emptyView())
	} else {
		b.WriteString(m.table.View())
	}
	b.WriteString("\n" + m.detailView() + "\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m *Model) headerView() string {
	parts := []string{theme.AppNameStyle.Render("hotline")}

	switch {
	case m.connected:
		parts = append(parts, theme.LiveStyle.Render("● live"))
	case m.connErr != nil && m.retryIn > 0:
		parts = append(parts, theme.OfflineStyle.Render(fmt.Sprintf("○ offline, retrying in %s", m.retryIn.Round(time.Second))))
	default:
		parts = append(parts, theme.MutedStyle.Render("○ connecting"))
	}

	hookType := "all hooks"
	if m.filter.HookType != "" {
		hookType = theme.HookTypeStyle(m.filter.HookType).Render(string(m.filter.HookType))
	}
	parts = append(parts, theme.LabelStyle.Render("showing ")+hookType)
	if m.filter.Keyword != "" {
		parts = append(parts, theme.LabelStyle.Render("matching ")+theme.NormalStyle.Render(fmt.Sprintf("%q", m.filter.Keyword)))
	}
	if m.filter.SessionID != "" {
		parts = append(parts, theme.LabelStyle.Render("session ")+theme.NormalStyle.Render(shortID(m.filter.SessionID)))
	}
	parts = append(parts, theme.MutedStyle.Render(fmt.Sprintf("%d events", len(m.entries))))

	return strings.Join(parts, theme.MutedStyle.Render("  •  "))
}

func (m *Model) emptyView() string {
	text := "No events yet. Trigger a hook or run `hotline test-hook`."
	if m.loading {
		text = "Loading events..."
	} else if m.filter.HookType != "" || m.filter.Keyword != "" {
		text = "No events match the current filters."
	}
	return theme.MutedStyle.Render(text) + strings.Repeat("\n", max(m.table.Height(), 1))
}

func (m *Model) detailView() string {
	if m.state == stateConfirmingClear {
		return theme.ConfirmStyle.Render("Clear every event from the ledger? (y/n)")
	}
	entry, ok := m.selected()
	if !ok {
		return ""
	}
	line := theme.HookTypeStyle(entry.HookType).Render(string(entry.HookType)) + " " +
		theme.MutedStyle.Render(humanize.RelTime(entry.Timestamp, m.now(), "ago", "from now")) + " " +
		theme.NormalStyle.Render(entry.MessageOr(""))
	if m.width > 0 {
		line = theme.NormalStyle.MaxWidth(m.width).Render(line)
	}
	return line
}

// footerView is always two lines: an error, a status message or a tip
func (m *Model) footerView() string {
	switch {
	case m.statusErr != nil:
		text := formatErrorForDisplay(m.statusErr, m.width)
		if !strings.Contains(text, "\n") {
			text += "\n "
		}
		return theme.ErrorStyle.Render(text)
	case m.status != "":
		return theme.SuccessStyle.Render(m.status) + "\n "
	}

	tips := m.keys.Tips()
	if len(tips) == 0 {
		return " \n "
	}
	return tips[m.tipIndex%len(tips)].Render() + "\n "
}
