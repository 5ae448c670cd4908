// Package chord turns a stream of key events into resolved commands.
//
// A Parser holds at most one chord in progress: an optional numeric count
// followed by the keys typed so far. Each Feed consults the binding table
// and yields exactly one Resolution:
//
//   - Fire: the keys are bound and nothing longer shares them.
//   - Pending: the keys are a prefix of a longer binding, or a count is
//     being typed.
//   - Literal: nothing matched in a mode that takes text; the typed
//     characters should be inserted.
//   - Unmapped: nothing matched; the chord was discarded.
//   - Cancelled: Escape abandoned the chord in progress.
//
// Resolution depends only on the bindings and the order of keys, never on
// timing.
package chord
