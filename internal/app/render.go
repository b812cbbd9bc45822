package app

// ListView is everything a front end needs to draw the list for the current
// mode. It is rebuilt from scratch on every call to Render.
type ListView struct {
	Heading        string
	Mode           Mode
	Theme          Theme
	Empty          bool
	ShowInput      bool
	ShowViewToggle bool
	ShowEditToggle bool
	AdvanceEnabled bool
	ExportEnabled  bool
	Rows           []Row
}

type Row struct {
	ID        int64
	Index     int
	Text      string
	Completed bool
	Editable  bool
	Deletable bool
}

func (a *App) Render() ListView {
	list := a.store.Tasks()
	edit := a.mode == ModeEdit

	v := ListView{
		Heading:        HeadingView,
		Mode:           a.mode,
		Theme:          a.theme,
		Empty:          len(list) == 0,
		ShowInput:      edit,
		ShowViewToggle: edit,
		ShowEditToggle: !edit,
		Rows:           make([]Row, 0, len(list)),
	}
	if edit {
		v.Heading = HeadingEdit
	}
	v.AdvanceEnabled = !v.Empty
	v.ExportEnabled = !v.Empty

	for i, t := range list {
		v.Rows = append(v.Rows, Row{
			ID:        t.ID,
			Index:     i + 1,
			Text:      t.Text,
			Completed: t.Completed,
			Editable:  edit,
			Deletable: edit,
		})
	}
	return v
}
