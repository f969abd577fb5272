// Package cli provides the interactive Matcha command-line client.
//
// It wires configuration, local token storage, the API gateway, and an
// interactive REPL over the session, modal, and feature services.
// Typical flow: restore a stored session on startup, then execute user
// commands until exit.
//
// Key features:
//   - Login / Register / Logout / whoami
//   - Forgot-password and reset-password dialogs
//   - Browse profiles (sorted, tag-filtered, cached)
//   - Show and edit the own profile
//   - Conversations and the notification feed
//
// The REPL is started via App.Run(ctx), which blocks until the user
// exits. See App and runREPL for details.
package cli
