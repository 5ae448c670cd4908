package keymap

// DefaultKeymaps returns the built-in keymaps, one per mode.
func DefaultKeymaps() []*Keymap {
	return []*Keymap{
		defaultNormalKeymap(),
		defaultInsertKeymap(),
		defaultCommandLineKeymap(),
		defaultVisualKeymap(),
	}
}

// NewDefaultTable returns a table holding the built-in bindings.
func NewDefaultTable() *Table {
	t := NewTable()
	for _, km := range DefaultKeymaps() {
		if err := km.Apply(t); err != nil {
			panic("keymap: invalid default keymap: " + err.Error())
		}
	}
	return t
}

func motionBindings() []Binding {
	return []Binding{
		{Keys: "h", Command: "CursorLeft", Description: "Move left"},
		{Keys: "j", Command: "CursorDown", Description: "Move down"},
		{Keys: "k", Command: "CursorUp", Description: "Move up"},
		{Keys: "l", Command: "CursorRight", Description: "Move right"},
		{Keys: "<Left>", Command: "CursorLeft"},
		{Keys: "<Down>", Command: "CursorDown"},
		{Keys: "<Up>", Command: "CursorUp"},
		{Keys: "<Right>", Command: "CursorRight"},
		{Keys: "<C-e>", Command: "ScrollDown", Description: "Scroll down"},
		{Keys: "<C-y>", Command: "ScrollUp", Description: "Scroll up"},
		{Keys: "0", Command: "Home", Description: "Start of line"},
		{Keys: "<Home>", Command: "Home"},
		{Keys: "$", Command: "End", Description: "End of line"},
		{Keys: "<End>", Command: "End"},
		{Keys: "^", Command: "FirstCharInLine", Description: "First non-blank"},
		{Keys: "w", Command: "MoveForwardByWord", Description: "Next word"},
		{Keys: "b", Command: "MoveBackwardByWord", Description: "Previous word"},
		{Keys: "g g", Command: "JumpToFirstLineBuffer", Description: "First line"},
		{Keys: "G", Command: "JumpToLastLineBuffer", Description: "Last line"},
	}
}

func defaultNormalKeymap() *Keymap {
	bindings := append(motionBindings(),
		Binding{Keys: "x", Command: "DeleteChar", Description: "Delete character"},
		Binding{Keys: "d d", Command: "DeleteLine", Description: "Delete line"},
		Binding{Keys: "y y", Command: "YankLine", Description: "Yank line"},
		Binding{Keys: "p", Command: "Paste", Description: "Put below"},
		Binding{Keys: "P", Command: "PasteBack", Description: "Put below, stay"},
		Binding{Keys: "i", Command: "ChangeMode", Arg: "insert", Description: "Insert mode"},
		Binding{Keys: "v", Command: "ChangeMode", Arg: "visual", Description: "Visual mode"},
		Binding{Keys: ":", Command: "EnterCommandMode", Description: "Command line"},
		Binding{Keys: "<C-w> w", Command: "NextWindow", Description: "Next window"},
		Binding{Keys: "<C-w> c", Command: "CloseWindow", Description: "Close window"},
		Binding{Keys: "<C-w> q", Command: "CloseWindow"},
		Binding{Keys: "<C-s>", Command: "Save", Description: "Save buffer"},
		Binding{Keys: "<C-o>", Command: "JumpListBack"},
		Binding{Keys: "<Tab>", Command: "JumpListForward"},
		Binding{Keys: "u", Command: "Undo"},
	)
	return &Keymap{Name: "default-normal", Mode: "normal", Bindings: bindings, Source: "default"}
}

func defaultInsertKeymap() *Keymap {
	return &Keymap{
		Name:   "default-insert",
		Mode:   "insert",
		Source: "default",
		Bindings: []Binding{
			{Keys: "<Esc>", Command: "ChangeMode", Arg: "normal", Description: "Normal mode"},
			{Keys: "<BS>", Command: "Backspace"},
			{Keys: "<Del>", Command: "DeleteChar"},
			{Keys: "<CR>", Command: "NewLine"},
			{Keys: "<Tab>", Command: "InsertTab"},
			{Keys: "<Left>", Command: "CursorLeft"},
			{Keys: "<Down>", Command: "CursorDown"},
			{Keys: "<Up>", Command: "CursorUp"},
			{Keys: "<Right>", Command: "CursorRight"},
			{Keys: "<Home>", Command: "Home"},
			{Keys: "<End>", Command: "End"},
		},
	}
}

func defaultCommandLineKeymap() *Keymap {
	return &Keymap{
		Name:   "default-command",
		Mode:   "command",
		Source: "default",
		Bindings: []Binding{
			{Keys: "<Esc>", Command: "ExitCommandMode", Description: "Cancel"},
			{Keys: "<CR>", Command: "ExecuteCommandLine", Description: "Run command"},
			{Keys: "<BS>", Command: "Backspace"},
			{Keys: "<Left>", Command: "CursorLeft"},
			{Keys: "<Right>", Command: "CursorRight"},
		},
	}
}

func defaultVisualKeymap() *Keymap {
	bindings := append(motionBindings(),
		Binding{Keys: "<Esc>", Command: "ChangeMode", Arg: "normal", Description: "Normal mode"},
		Binding{Keys: "y", Command: "YankLine"},
	)
	return &Keymap{Name: "default-visual", Mode: "visual", Bindings: bindings, Source: "default"}
}
