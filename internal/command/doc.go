// Package command defines the editor's closed set of commands.
//
// A Command is a value: a Kind plus the payload that kind needs (the
// character for InsertChar, the target mode for ChangeMode, the text for
// Print, an optional path for Save, the script token for InvokeScript).
// Kinds have stable numeric identities so commands compare by value and
// can be named in configuration files and scripts.
//
// Commands carry no behaviour. The dispatcher package executes them.
package command
