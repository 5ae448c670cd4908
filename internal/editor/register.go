package editor

import "github.com/atotto/clipboard"

// Register is the clipboard slot used by yank, delete and paste. Get
// reports false until the register has been written, so an empty line
// that was yanked is told apart from an unused register.
type Register interface {
	Get() (string, bool)
	Set(text string)
}

// MemoryRegister keeps the register in memory.
type MemoryRegister struct {
	text string
	set  bool
}

// Get returns the register contents.
func (r *MemoryRegister) Get() (string, bool) {
	return r.text, r.set
}

// Set replaces the register contents.
func (r *MemoryRegister) Set(text string) {
	r.text = text
	r.set = true
}

// SystemRegister mirrors the register to the operating system clipboard.
// When the clipboard is unavailable it behaves like a MemoryRegister.
type SystemRegister struct {
	mem MemoryRegister

	// OnError, if set, receives clipboard failures.
	OnError func(error)
}

// Get returns the system clipboard, or the last value set when the
// clipboard cannot be read. Text copied by another program counts as set.
func (r *SystemRegister) Get() (string, bool) {
	if clipboard.Unsupported {
		return r.mem.Get()
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		r.report(err)
		return r.mem.Get()
	}
	_, set := r.mem.Get()
	return text, set || text != ""
}

// Set writes text to the system clipboard and to memory.
func (r *SystemRegister) Set(text string) {
	r.mem.Set(text)
	if clipboard.Unsupported {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		r.report(err)
	}
}

func (r *SystemRegister) report(err error) {
	if r.OnError != nil {
		r.OnError(err)
	}
}
