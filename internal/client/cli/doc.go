// Package cli provides the interactive Holocron command-line client.
//
// It wires configuration, the local credential vault, the remote notes API
// and an interactive REPL. Typical flow: restore a persisted session, then
// execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout against the notes API
//   - List notes, with an incremental debounced search mode
//   - Add / Edit / Show / Delete notes
//   - Upgrade to a paid plan via a checkout link
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
