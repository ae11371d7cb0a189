package ui

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/hotline/internal/domain"
)

type fakeSource struct {
	clearErr error
	cleared  int64
	entries  []domain.LogEntry
	filters  []domain.LogFilter
	loadErr  error
}

func (f *fakeSource) Logs(_ context.Context, filter domain.LogFilter) ([]domain.LogEntry, error) {
	f.filters = append(f.filters, filter)
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	var out []domain.LogEntry
	for _, e := range f.entries {
		if filter.Matches(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeSource) ClearLogs(context.Context) (int64, error) {
	if f.clearErr != nil {
		return 0, f.clearErr
	}
	n := int64(len(f.entries))
	f.entries = nil
	f.cleared += n
	return n, nil
}

func (f *fakeSource) ExportLogs(_ context.Context, filter domain.LogFilter, w io.Writer) error {
	_, err := io.WriteString(w, "timestamp,hookType\n")
	return err
}

var fixedNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func entry(id int64, hookType domain.HookType, message string) domain.LogEntry {
	e := domain.LogEntry{
		ID:        id,
		Timestamp: fixedNow.Add(-time.Duration(id) * time.Minute),
		SessionID: "session-" + string(rune('a'+id)),
		HookType:  hookType,
	}
	if message != "" {
		e.Message = &message
	}
	return e
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// exec runs cmd and feeds its message back into the model
func exec(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	m.Update(cmd())
}

func newLoadedModel(t *testing.T, source *fakeSource, opts Options) *Model {
	t.Helper()
	if opts.Now == nil {
		opts.Now = func() time.Time { return fixedNow }
	}
	m := NewModel(context.Background(), source, opts)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	exec(t, m, m.load())
	return m
}

func TestModel_InitialLoad(t *testing.T) {
	source := &fakeSource{entries: []domain.LogEntry{
		entry(2, domain.HookStop, "done"),
		entry(1, domain.HookPreToolUse, "Running npm test"),
	}}
	m := newLoadedModel(t, source, Options{Limit: 50})

	require.Len(t, m.entries, 2)
	assert.Len(t, m.table.Rows(), 2)
	assert.Equal(t, 50, source.filters[0].Limit)
	assert.Contains(t, m.View(), "2 events")
	assert.Contains(t, m.View(), "Running npm test")
}

func TestModel_LoadError(t *testing.T) {
	source := &fakeSource{loadErr: errors.New("connection refused")}
	m := newLoadedModel(t, source, Options{})

	require.Error(t, m.statusErr)
	assert.Contains(t, m.View(), "failed to load events")

	// The error disappears once its timer fires
	m.Update(clearStatusMsg{seq: m.statusSeq})
	assert.NoError(t, m.statusErr)
}

func TestModel_StaleLoadIgnored(t *testing.T) {
	source := &fakeSource{entries: []domain.LogEntry{entry(1, domain.HookStop, "")}}
	m := newLoadedModel(t, source, Options{})

	m.load()
	fresh := m.load()
	source.entries = append(source.entries, entry(2, domain.HookStop, ""))

	m.Update(fresh())
	require.Len(t, m.entries, 2)
	m.Update(logsLoadedMsg{seq: m.loadSeq - 1})
	assert.Len(t, m.entries, 2)
}

func TestModel_NewLogEvents(t *testing.T) {
	source := &fakeSource{entries: []domain.LogEntry{entry(1, domain.HookStop, "first")}}
	m := newLoadedModel(t, source, Options{HookType: domain.HookStop, Limit: 2})

	// Filtered out
	m.Update(EventMsg{Message: domain.NewLogMessage(entry(2, domain.HookPreToolUse, ""))})
	assert.Len(t, m.entries, 1)

	m.Update(EventMsg{Message: domain.NewLogMessage(entry(3, domain.HookStop, "second"))})
	require.Len(t, m.entries, 2)
	assert.Equal(t, int64(3), m.entries[0].ID)

	// Duplicate of an entry already listed
	m.Update(EventMsg{Message: domain.NewLogMessage(entry(3, domain.HookStop, "second"))})
	assert.Len(t, m.entries, 2)

	// The limit drops the oldest
	m.Update(EventMsg{Message: domain.NewLogMessage(entry(4, domain.HookStop, "third"))})
	require.Len(t, m.entries, 2)
	assert.Equal(t, int64(4), m.entries[0].ID)
	assert.Equal(t, int64(3), m.entries[1].ID)

	m.Update(EventMsg{Message: domain.Message{Type: domain.MessageNewLog}})
	assert.Len(t, m.entries, 2)

	m.Update(EventMsg{Message: domain.ClearLogsMessage()})
	assert.Empty(t, m.entries)
	assert.Empty(t, m.table.Rows())
}

func TestModel_NewLogKeepsSelection(t *testing.T) {
	source := &fakeSource{entries: []domain.LogEntry{
		entry(2, domain.HookStop, ""),
		entry(1, domain.HookStop, ""),
	}}
	m := newLoadedModel(t, source, Options{})

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	selected, ok := m.selected()
	require.True(t, ok)
	require.Equal(t, int64(1), selected.ID)

	m.Update(EventMsg{Message: domain.NewLogMessage(entry(3, domain.HookStop, ""))})
	selected, ok = m.selected()
	require.True(t, ok)
	assert.Equal(t, int64(1), selected.ID)
}

func TestModel_CycleHookType(t *testing.T) {
	source := &fakeSource{}
	m := newLoadedModel(t, source, Options{})
	all := domain.AllHookTypes()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, all[0], m.filter.HookType)
	exec(t, m, cmd)
	assert.Equal(t, all[0], source.filters[len(source.filters)-1].HookType)

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, domain.HookType(""), m.filter.HookType)

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, all[len(all)-1], m.filter.HookType)
}

func TestModel_Search(t *testing.T) {
	source := &fakeSource{entries: []domain.LogEntry{
		entry(2, domain.HookStop, "Build finished"),
		entry(1, domain.HookPreToolUse, "Running npm test"),
	}}
	m := newLoadedModel(t, source, Options{})

	m.Update(runes("/"))
	require.Equal(t, stateSearching, m.state)
	for _, r := range "npm" {
		m.Update(runes(string(r)))
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, stateList, m.state)
	assert.Equal(t, "npm", m.filter.Keyword)
	exec(t, m, cmd)
	require.Len(t, m.entries, 1)
	assert.Equal(t, int64(1), m.entries[0].ID)
	assert.Contains(t, m.View(), `"npm"`)

	// esc in the list clears every filter
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.filter.Keyword)
	exec(t, m, cmd)
	assert.Len(t, m.entries, 2)

	// esc while typing keeps the previous keyword
	m.Update(runes("/"))
	m.Update(runes("x"))
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.Empty(t, m.filter.Keyword)
}

func TestModel_ClearLogs(t *testing.T) {
	source := &fakeSource{entries: []domain.LogEntry{
		entry(2, domain.HookStop, ""),
		entry(1, domain.HookStop, ""),
	}}
	m := newLoadedModel(t, source, Options{})

	m.Update(runes("C"))
	require.Equal(t, stateConfirmingClear, m.state)
	assert.Contains(t, m.View(), "Clear every event")

	_, cmd := m.Update(runes("n"))
	assert.Nil(t, cmd)
	assert.Equal(t, stateList, m.state)
	assert.Zero(t, source.cleared)

	m.Update(runes("C"))
	_, cmd = m.Update(runes("y"))
	exec(t, m, cmd)
	assert.Equal(t, int64(2), source.cleared)
	assert.Empty(t, m.entries)
	assert.Equal(t, "Cleared 2 events", m.status)
}

func TestModel_ClearLogsError(t *testing.T) {
	source := &fakeSource{clearErr: errors.New("boom"), entries: []domain.LogEntry{entry(1, domain.HookStop, "")}}
	m := newLoadedModel(t, source, Options{})

	m.Update(runes("C"))
	_, cmd := m.Update(runes("y"))
	exec(t, m, cmd)
	require.Error(t, m.statusErr)
	assert.Len(t, m.entries, 1)
}

func TestModel_Export(t *testing.T) {
	dir := t.TempDir()
	m := newLoadedModel(t, &fakeSource{}, Options{ExportDir: dir})

	_, cmd := m.Update(runes("e"))
	exec(t, m, cmd)

	path := filepath.Join(dir, "hotline-logs-20260314-150926.csv")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "timestamp,hookType\n", string(data))
	assert.Equal(t, "Exported to "+path, m.status)
}

func TestModel_ConnectionState(t *testing.T) {
	source := &fakeSource{}
	m := newLoadedModel(t, source, Options{})
	assert.Contains(t, m.View(), "connecting")

	_, cmd := m.Update(ConnectedMsg{})
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "live")

	m.Update(DisconnectedMsg{Err: errors.New("eof"), RetryIn: 2 * time.Second})
	assert.Contains(t, m.View(), "retrying in 2s")

	// Reconnecting reloads what was missed
	loads := len(source.filters)
	_, cmd = m.Update(ConnectedMsg{})
	exec(t, m, cmd)
	assert.Len(t, source.filters, loads+1)
}

func TestModel_HelpScreen(t *testing.T) {
	m := newLoadedModel(t, &fakeSource{}, Options{})

	m.Update(runes("?"))
	require.Equal(t, stateHelp, m.state)
	assert.Contains(t, m.View(), "Filters")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateList, m.state)
}

func TestModel_Quit(t *testing.T) {
	m := newLoadedModel(t, &fakeSource{}, Options{})

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	// ctrl+c works while typing a search
	m.Update(runes("/"))
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "15:08:26", formatTimestamp(fixedNow.Add(-time.Minute), fixedNow))
	assert.Equal(t, "Mar 13 15:09", formatTimestamp(fixedNow.Add(-24*time.Hour), fixedNow))
}

func TestFormatErrorForDisplay(t *testing.T) {
	assert.Empty(t, formatErrorForDisplay(nil, 80))
	assert.Equal(t, "Error: unknown error", formatErrorForDisplay(errors.New(""), 80))
	assert.Equal(t, "Error: short", formatErrorForDisplay(errors.New("short"), 80))

	long := errors.New(strings.Repeat("word ", 40))
	text := formatErrorForDisplay(long, 30)
	lines := strings.Split(text, "\n")
	require.Len(t, lines, maxErrorLines)
	assert.True(t, strings.HasPrefix(lines[0], errorPrefix))
	assert.True(t, strings.HasSuffix(lines[1], truncationMark))
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 30)
	}
}

func TestKeyMap_Tips(t *testing.T) {
	tips := NewKeyMap().Tips()
	require.NotEmpty(t, tips)
	assert.Equal(t, "press ? to see all shortcuts", tips[0].String())
	assert.Contains(t, tips[0].Render(), "?")
}
