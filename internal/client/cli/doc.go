// Package cli provides the interactive chapterdesk command-line client.
//
// It wires configuration, local storage, the REST API client, the session
// store and the export archive, and exposes every screen of the chapter
// dashboard as a cobra command. Without arguments the client runs a REPL
// that feeds each line into the same command tree.
//
// Commands under the dashboard (members, attendance, bills, recruitment and
// the write side of blogs and events) are guarded: without a stored token
// they return a *RedirectError pointing at "login" instead of running.
//
// The REPL is started via App.Run(ctx, nil), which blocks until the user
// exits.
package cli
