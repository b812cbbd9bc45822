// Package app owns the task list together with the edit/view and theme
// flags, and derives what the list should look like for the current mode.
package app

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"cleanlist/internal/config"
	"cleanlist/internal/export"
	"cleanlist/internal/logging"
	"cleanlist/internal/tasks"
)

// ThemeKey is the slot holding the theme preference.
const ThemeKey = "theme"

const (
	HeadingEdit = "Edit Tasks"
	HeadingView = "My List"
)

var ErrNothingToExport = errors.New("no tasks to export")

type Mode int

const (
	ModeEdit Mode = iota
	ModeView
)

func (m Mode) String() string {
	if m == ModeView {
		return "view"
	}
	return "edit"
}

type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

type Config struct {
	ExportPath string
	DateFormat string
	Logger     *log.Logger
	Now        func() time.Time
}

type App struct {
	slot   tasks.Slot
	store  *tasks.Store
	mode   Mode
	theme  Theme
	cfg    Config
	logger *log.Logger
}

// New loads the task list and theme preference from slot. The returned App
// starts in edit mode.
func New(slot tasks.Slot, cfg Config) *App {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	a := &App{
		slot:   slot,
		store:  tasks.Load(slot, tasks.WithClock(cfg.Now)),
		mode:   ModeEdit,
		theme:  loadTheme(slot),
		cfg:    cfg,
		logger: logger,
	}
	a.logger.Debug("app initialised", "tasks", a.store.Len(), "theme", a.theme)
	return a
}

// Close marks the end of the session. Every mutation is already persisted,
// so there is nothing to flush.
func (a *App) Close() error {
	a.logger.Debug("app closed", "tasks", a.store.Len())
	return nil
}

func loadTheme(slot tasks.Slot) Theme {
	v, ok, err := slot.Get(ThemeKey)
	if err != nil || !ok || v != "dark" {
		return ThemeLight
	}
	return ThemeDark
}

func (a *App) Tasks() []tasks.Task { return a.store.Tasks() }
func (a *App) Mode() Mode           { return a.mode }
func (a *App) Theme() Theme         { return a.theme }

func (a *App) Task(id int64) (tasks.Task, bool) {
	return a.store.Get(id)
}

func (a *App) Add(text string) (tasks.Task, bool, error) {
	t, added, err := a.store.Add(text)
	if err != nil {
		a.logger.Error("add task", "err", err)
		return t, false, err
	}
	if added {
		a.logger.Debug("task added", "id", t.ID)
	}
	return t, added, nil
}

func (a *App) Toggle(id int64) error {
	if err := a.store.Toggle(id); err != nil {
		a.logger.Error("toggle task", "id", id, "err", err)
		return err
	}
	a.logger.Debug("task toggled", "id", id)
	return nil
}

func (a *App) Rename(id int64, text string) error {
	if err := a.store.Rename(id, text); err != nil {
		a.logger.Error("rename task", "id", id, "err", err)
		return err
	}
	a.logger.Debug("task renamed", "id", id)
	return nil
}

func (a *App) Delete(id int64) error {
	if err := a.store.Delete(id); err != nil {
		a.logger.Error("delete task", "id", id, "err", err)
		return err
	}
	a.logger.Debug("task deleted", "id", id)
	return nil
}

func (a *App) EnterViewMode() { a.mode = ModeView }
func (a *App) EnterEditMode() { a.mode = ModeEdit }

// ToggleTheme flips the theme and stores the preference. The flag only
// changes once the preference is written.
func (a *App) ToggleTheme() error {
	next := ThemeDark
	if a.theme == ThemeDark {
		next = ThemeLight
	}
	if err := a.slot.Set(ThemeKey, next.String()); err != nil {
		a.logger.Error("save theme", "err", err)
		return err
	}
	a.theme = next
	return nil
}

func (a *App) CanExport() bool {
	return a.store.Len() > 0
}

// Export writes the PDF snapshot to the configured path and returns it.
func (a *App) Export() (string, error) {
	return a.ExportTo(a.cfg.ExportPath)
}

// ExportTo writes the PDF snapshot to path. An empty list is refused.
func (a *App) ExportTo(path string) (string, error) {
	if !a.CanExport() {
		return "", ErrNothingToExport
	}
	if path == "" {
		path = config.DefaultExportName
	}
	err := export.WriteFile(path, a.store.Tasks(), a.cfg.Now(), export.Options{DateFormat: a.cfg.DateFormat})
	if err != nil {
		a.logger.Error("export", "path", path, "err", err)
		return "", err
	}
	a.logger.Info("exported", "path", path, "tasks", a.store.Len())
	return path, nil
}
