package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanlist/internal/storage"
	"cleanlist/internal/tasks"
)

type memSlot struct {
	values map[string]string
	setErr error
}

func (m *memSlot) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memSlot) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func newTestApp(t *testing.T) (*App, *memSlot) {
	t.Helper()
	slot := &memSlot{values: map[string]string{}}
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	a := New(slot, Config{
		ExportPath: filepath.Join(t.TempDir(), "todo-list.pdf"),
		Now: func() time.Time {
			clock = clock.Add(time.Millisecond)
			return clock
		},
	})
	t.Cleanup(func() { a.Close() })
	return a, slot
}

func TestNewStartsInEditModeLightTheme(t *testing.T) {
	a, _ := newTestApp(t)
	assert.Equal(t, ModeEdit, a.Mode())
	assert.Equal(t, ThemeLight, a.Theme())
	assert.Empty(t, a.Tasks())
}

func TestNewReadsDarkPreference(t *testing.T) {
	slot := &memSlot{values: map[string]string{ThemeKey: "dark"}}
	a := New(slot, Config{})
	assert.Equal(t, ThemeDark, a.Theme())

	slot = &memSlot{values: map[string]string{ThemeKey: "purple"}}
	assert.Equal(t, ThemeLight, New(slot, Config{}).Theme())
}

func TestToggleThemePersists(t *testing.T) {
	a, slot := newTestApp(t)

	require.NoError(t, a.ToggleTheme())
	assert.Equal(t, ThemeDark, a.Theme())
	assert.Equal(t, "dark", slot.values[ThemeKey])

	require.NoError(t, a.ToggleTheme())
	assert.Equal(t, ThemeLight, a.Theme())
	assert.Equal(t, "light", slot.values[ThemeKey])
}

func TestToggleThemeFailureKeepsTheme(t *testing.T) {
	a, slot := newTestApp(t)
	slot.setErr = errors.New("readonly")

	assert.Error(t, a.ToggleTheme())
	assert.Equal(t, ThemeLight, a.Theme())
}

func TestModeSwitchesDoNotTouchTasks(t *testing.T) {
	a, slot := newTestApp(t)
	_, _, err := a.Add("A")
	require.NoError(t, err)
	_, _, err = a.Add("B")
	require.NoError(t, err)
	before := a.Tasks()
	stored := slot.values[tasks.StorageKey]

	a.EnterViewMode()
	assert.Equal(t, ModeView, a.Mode())
	a.EnterEditMode()
	assert.Equal(t, ModeEdit, a.Mode())

	assert.Equal(t, before, a.Tasks())
	assert.Equal(t, stored, slot.values[tasks.StorageKey])
}

func TestRenderEmpty(t *testing.T) {
	a, _ := newTestApp(t)

	v := a.Render()
	assert.True(t, v.Empty)
	assert.False(t, v.ExportEnabled)
	assert.False(t, v.AdvanceEnabled)
	assert.Equal(t, HeadingEdit, v.Heading)
	assert.True(t, v.ShowInput)
	assert.Empty(t, v.Rows)
}

func TestRenderEditMode(t *testing.T) {
	a, _ := newTestApp(t)
	first, _, err := a.Add("A")
	require.NoError(t, err)
	_, _, err = a.Add("B")
	require.NoError(t, err)
	require.NoError(t, a.Toggle(first.ID))

	v := a.Render()
	assert.False(t, v.Empty)
	assert.True(t, v.ExportEnabled)
	assert.True(t, v.AdvanceEnabled)
	assert.True(t, v.ShowViewToggle)
	assert.False(t, v.ShowEditToggle)
	require.Len(t, v.Rows, 2)
	assert.Equal(t, Row{ID: first.ID, Index: 1, Text: "A", Completed: true, Editable: true, Deletable: true}, v.Rows[0])
	assert.Equal(t, 2, v.Rows[1].Index)
	assert.False(t, v.Rows[1].Completed)
}

func TestRenderViewMode(t *testing.T) {
	a, _ := newTestApp(t)
	_, _, err := a.Add("A")
	require.NoError(t, err)
	a.EnterViewMode()

	v := a.Render()
	assert.Equal(t, HeadingView, v.Heading)
	assert.False(t, v.ShowInput)
	assert.True(t, v.ShowEditToggle)
	assert.False(t, v.ShowViewToggle)
	require.Len(t, v.Rows, 1)
	assert.False(t, v.Rows[0].Editable)
	assert.False(t, v.Rows[0].Deletable)
}

func TestRenderReflectsEveryMutation(t *testing.T) {
	a, _ := newTestApp(t)
	task, _, err := a.Add("draft")
	require.NoError(t, err)

	require.NoError(t, a.Rename(task.ID, "   "))
	assert.Equal(t, "   ", a.Render().Rows[0].Text)

	require.NoError(t, a.Delete(task.ID))
	assert.True(t, a.Render().Empty)
}

func TestExportRefusedWhenEmpty(t *testing.T) {
	a, _ := newTestApp(t)
	assert.False(t, a.CanExport())

	_, err := a.Export()
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestExportWritesFile(t *testing.T) {
	a, _ := newTestApp(t)
	_, _, err := a.Add("Buy milk")
	require.NoError(t, err)

	path, err := a.Export()
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Len(t, a.Tasks(), 1, "export must not mutate tasks")
}

func TestAppOverSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cleanlist.db")
	s, err := storage.Open(dbPath)
	require.NoError(t, err)

	a := New(s, Config{})
	_, _, err = a.Add("persisted")
	require.NoError(t, err)
	require.NoError(t, a.ToggleTheme())
	require.NoError(t, a.Close())
	require.NoError(t, s.Close())

	s, err = storage.Open(dbPath)
	require.NoError(t, err)
	defer s.Close()

	b := New(s, Config{})
	require.Len(t, b.Tasks(), 1)
	assert.Equal(t, "persisted", b.Tasks()[0].Text)
	assert.Equal(t, ThemeDark, b.Theme())
}

func TestTaskLookup(t *testing.T) {
	a, _ := newTestApp(t)
	added, _, err := a.Add("find me")
	require.NoError(t, err)

	got, ok := a.Task(added.ID)
	require.True(t, ok)
	assert.Equal(t, added, got)

	_, ok = a.Task(added.ID + 1)
	assert.False(t, ok)
}
