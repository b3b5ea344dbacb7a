// Package cli provides the interactive logdash command-line client.
//
// It wires configuration, the local token store, the session guard, the
// REST client and an interactive REPL. Public commands cover registration,
// login with an optional one-time code, and password recovery. Protected
// commands (home, logs, raw, status) run only with a valid session and
// otherwise send the user through login first.
//
// After login a background watcher re-checks the token on a fixed interval
// and flags its expiry; the REPL then asks for credentials again.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, runREPL and session.Guard for details.
package cli
