// Package mode provides the editor's modal state machine.
//
// Four modes exist:
//   - Normal: navigation and editing commands (initial mode)
//   - Insert: text input
//   - CommandLine: typing into the reserved command-line window
//   - Visual: Normal-mode navigation with a pending selection
//
// # Transitions
//
//	          ChangeMode(Insert)
//	Normal ─────────────────────▶ Insert
//	  ▲  ◀───────────────────────   │ Esc / ChangeMode(Normal)
//	  │ │
//	  │ │ EnterCommandMode           ChangeMode(Visual)
//	  │ └──────────▶ CommandLine     Normal ◀──▶ Visual
//	  └──────────────┘ ExitCommandMode
//
// Any other transition is rejected by Machine.Transition. Quit ends the run
// loop from any mode and is not a transition.
package mode
