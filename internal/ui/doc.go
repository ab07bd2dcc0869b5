// Package ui provides the terminal user interface for the earshot console.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program with three panels, one per tool: forensic
// audio analysis, the generic endpoint tester, and the honeypot tester. The
// console is a thin client; all classification happens in the remote
// forensic engine, and the two testers send exactly one HTTP request per
// submission.
//
// # Package Structure
//
//   - app.go: root Model, Update loop, panel switching, and the Run function
//   - form.go: labelled text-input stack shared by all panels
//   - forensics.go, probe.go, honeypot.go: per-panel fields, submit
//     commands, and outcome rendering
//   - header.go: top bar and bottom command bar
//   - help.go: keyboard shortcut overlay
//   - theme.go: color themes and Lipgloss style construction
//
// # Event Flow
//
//  1. Run() builds the Model and starts the Bubble Tea program.
//  2. Submitting a panel writes a loading view to its state holder and
//     launches the request as a tea.Cmd.
//  3. The command's completion writes the terminal view to the holder and
//     posts a done message, which rebuilds the outcome viewport.
//  4. Panels are independent: each owns its holder, and a slow request in
//     one never blocks the others.
//
// Submissions carry no timeout and are never retried. Submitting a panel
// again while a request is in flight races the two completions; the last
// one to finish wins the holder.
//
// # Key Bindings
//
//   - F2/F3/F4: Switch panel
//   - tab / shift+tab: Move between form fields
//   - enter: Send the request
//   - ctrl+f: Fill the endpoint tester payload from the last loaded clip
//   - pgup/pgdn: Scroll the outcome area
//   - ctrl+t: Cycle theme
//   - F1: Toggle help
//   - ctrl+c: Quit
package ui
