// Package tasks holds the ordered task list and mirrors it to a key/value
// slot after every change.
package tasks

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"
)

// StorageKey is the slot holding the JSON-encoded task array.
const StorageKey = "cleanTasks"

type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Slot is the key/value storage the store persists to.
type Slot interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

type Store struct {
	slot  Slot
	tasks []Task
	now   func() time.Time
}

type Option func(*Store)

// WithClock replaces the clock used to derive new ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Load reads the persisted list. A missing, unreadable or malformed value
// yields an empty store.
func Load(slot Slot, opts ...Option) *Store {
	s := &Store{slot: slot, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.tasks = decode(slot)
	return s
}

func decode(slot Slot) []Task {
	raw, ok, err := slot.Get(StorageKey)
	if err != nil || !ok {
		return []Task{}
	}
	var list []Task
	if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
		return []Task{}
	}
	return list
}

// Tasks returns a copy of the list in display order.
func (s *Store) Tasks() []Task {
	return slices.Clone(s.tasks)
}

func (s *Store) Len() int {
	return len(s.tasks)
}

func (s *Store) Get(id int64) (Task, bool) {
	i := s.index(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// Add appends a task with the trimmed text. Blank text is ignored and
// reported with added == false and a nil error.
func (s *Store) Add(text string) (task Task, added bool, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, false, nil
	}
	task = Task{ID: s.nextID(), Text: text}
	err = s.mutate(func() {
		s.tasks = append(s.tasks, task)
	})
	if err != nil {
		return Task{}, false, err
	}
	return task, true, nil
}

// Toggle flips the completion flag of the task with id.
func (s *Store) Toggle(id int64) error {
	return s.mutate(func() {
		if i := s.index(id); i >= 0 {
			s.tasks[i].Completed = !s.tasks[i].Completed
		}
	})
}

// Rename stores text verbatim; unlike Add it neither trims nor rejects
// empty values.
func (s *Store) Rename(id int64, text string) error {
	return s.mutate(func() {
		if i := s.index(id); i >= 0 {
			s.tasks[i].Text = text
		}
	})
}

func (s *Store) Delete(id int64) error {
	return s.mutate(func() {
		if i := s.index(id); i >= 0 {
			s.tasks = slices.Delete(s.tasks, i, i+1)
		}
	})
}

// Persist writes the whole list to the slot, replacing the previous value.
func (s *Store) Persist() error {
	data, err := json.Marshal(s.tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := s.slot.Set(StorageKey, string(data)); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}

// mutate applies fn and persists. On a failed write the list is restored so
// memory never runs ahead of storage.
func (s *Store) mutate(fn func()) error {
	prev := slices.Clone(s.tasks)
	fn()
	if err := s.Persist(); err != nil {
		s.tasks = prev
		return err
	}
	return nil
}

func (s *Store) index(id int64) int {
	return slices.IndexFunc(s.tasks, func(t Task) bool { return t.ID == id })
}

func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	for _, t := range s.tasks {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}
