package command

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dshills/vedit/internal/input/mode"
)

// Kind identifies a command. Values are stable for the life of the process
// and are never persisted.
type Kind uint8

const (
	CursorUp Kind = iota
	CursorDown
	CursorLeft
	CursorRight
	ScrollUp
	ScrollDown
	Home
	End
	MoveForwardByWord
	MoveBackwardByWord
	JumpToFirstLineBuffer
	JumpToLastLineBuffer
	Backspace
	NewLine
	FirstCharInLine
	DeleteChar
	DeleteLine
	YankLine
	Paste
	PasteBack
	InsertChar
	ChangeMode
	EnterCommandMode
	ExitCommandMode
	ExecuteCommandLine
	NextWindow
	Print
	Save
	Quit
	CloseWindow
	ListBuffers
	InsertTab
	JumpListBack
	JumpListForward
	Undo
	InvokeScript

	kindCount
)

var kindNames = [kindCount]string{
	CursorUp:              "CursorUp",
	CursorDown:            "CursorDown",
	CursorLeft:            "CursorLeft",
	CursorRight:           "CursorRight",
	ScrollUp:              "ScrollUp",
	ScrollDown:            "ScrollDown",
	Home:                  "Home",
	End:                   "End",
	MoveForwardByWord:     "MoveForwardByWord",
	MoveBackwardByWord:    "MoveBackwardByWord",
	JumpToFirstLineBuffer: "JumpToFirstLineBuffer",
	JumpToLastLineBuffer:  "JumpToLastLineBuffer",
	Backspace:             "Backspace",
	NewLine:               "NewLine",
	FirstCharInLine:       "FirstCharInLine",
	DeleteChar:            "DeleteChar",
	DeleteLine:            "DeleteLine",
	YankLine:              "YankLine",
	Paste:                 "Paste",
	PasteBack:             "PasteBack",
	InsertChar:            "InsertChar",
	ChangeMode:            "ChangeMode",
	EnterCommandMode:      "EnterCommandMode",
	ExitCommandMode:       "ExitCommandMode",
	ExecuteCommandLine:    "ExecuteCommandLine",
	NextWindow:            "NextWindow",
	Print:                 "Print",
	Save:                  "Save",
	Quit:                  "Quit",
	CloseWindow:           "CloseWindow",
	ListBuffers:           "ListBuffers",
	InsertTab:             "InsertTab",
	JumpListBack:          "JumpListBack",
	JumpListForward:       "JumpListForward",
	Undo:                  "Undo",
	InvokeScript:          "InvokeScript",
}

// String returns the kind's name, e.g. "CursorUp".
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Valid reports whether k is a member of the command set.
func (k Kind) Valid() bool {
	return k < kindCount
}

// Kinds returns every command kind in identity order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Token is an opaque handle to a script function. Only the scripting host
// that issued it can resolve it.
type Token uint64

// Command is one member of the closed command set with its payload.
// The zero value is CursorUp.
type Command struct {
	Kind Kind

	// Char is the character inserted by InsertChar.
	Char rune

	// Mode is the target of ChangeMode.
	Mode mode.Mode

	// Text is the message for Print or the optional path for Save.
	Text string

	// Token is the script function run by InvokeScript.
	Token Token
}

// Of returns a payload-free command of kind k.
func Of(k Kind) Command {
	return Command{Kind: k}
}

// Char returns an InsertChar command.
func Char(r rune) Command {
	return Command{Kind: InsertChar, Char: r}
}

// To returns a ChangeMode command targeting m.
func To(m mode.Mode) Command {
	return Command{Kind: ChangeMode, Mode: m}
}

// Message returns a Print command.
func Message(text string) Command {
	return Command{Kind: Print, Text: text}
}

// SaveAs returns a Save command writing to path; "" saves to the buffer's
// own path.
func SaveAs(path string) Command {
	return Command{Kind: Save, Text: path}
}

// Script returns an InvokeScript command for tok.
func Script(tok Token) Command {
	return Command{Kind: InvokeScript, Token: tok}
}

// ID returns the command's stable identity.
func (c Command) ID() int {
	return int(c.Kind)
}

// String returns a readable form, e.g. "InsertChar('x')" or
// "ChangeMode(insert)".
func (c Command) String() string {
	switch c.Kind {
	case InsertChar:
		return fmt.Sprintf("%s(%q)", c.Kind, c.Char)
	case ChangeMode:
		return fmt.Sprintf("%s(%s)", c.Kind, c.Mode)
	case Print:
		return fmt.Sprintf("%s(%q)", c.Kind, c.Text)
	case Save:
		if c.Text != "" {
			return fmt.Sprintf("%s(%q)", c.Kind, c.Text)
		}
	case InvokeScript:
		return fmt.Sprintf("%s(#%d)", c.Kind, c.Token)
	}
	return c.Kind.String()
}

// Errors returned by Parse.
var (
	ErrUnknownCommand = errors.New("command: unknown command")
	ErrBadArgument    = errors.New("command: bad argument")
)

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k, name := range kindNames {
		m[strings.ToLower(name)] = Kind(k)
	}
	return m
}()

// Parse builds a command from its name and an optional argument, as
// written in keymap files and scripts. Names are case-insensitive.
// InvokeScript cannot be parsed; tokens are only issued by a script host.
func Parse(name, arg string) (Command, error) {
	k, ok := kindsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok || k == InvokeScript {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	c := Of(k)
	switch k {
	case InsertChar:
		if utf8.RuneCountInString(arg) != 1 {
			return Command{}, fmt.Errorf("%w: InsertChar needs one character, got %q", ErrBadArgument, arg)
		}
		c.Char, _ = utf8.DecodeRuneInString(arg)
	case ChangeMode:
		m, err := mode.Parse(arg)
		if err != nil {
			return Command{}, fmt.Errorf("%w: %w", ErrBadArgument, err)
		}
		c.Mode = m
	case Print, Save:
		c.Text = arg
	}
	return c, nil
}
