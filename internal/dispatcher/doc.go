// Package dispatcher executes commands against the editor context.
//
// Dispatch is the only way state changes. Each call runs one command to
// completion before returning: it is never interrupted by input and its
// effects are all applied before the next command starts. A command that
// fails reports through the context's status message; only Quit stops
// the editor.
//
// After every command the dispatcher keeps the cursor visible, marks the
// focused window dirty and checks the context's invariants.
//
// # Collaborators
//
// Two collaborators are plugged in with options:
//
//   - An ExInterpreter receives ex command lines (":w", ":q") through
//     RunCommandLine.
//   - A ScriptHost evaluates ":lua" lines and runs script functions bound
//     to keys. Scripts see the editor only through a ScriptAPI, which is
//     revoked when the evaluation returns.
package dispatcher
