// Package cli provides the interactive remindme command-line client.
//
// It wires configuration, the local session store, the API gateway, and an
// interactive REPL. Typical flow: restore the stored session (or prompt for
// credentials), then execute user commands.
//
// Key features:
//   - Login / Signup / Logout with a session that survives restarts
//   - Friend directory: pending requests, accept/reject, unfriend, add by email
//   - Reminder search with text query, category filter and pagination
//   - Reminder creation with category and related friends
//   - Profile: rename, notification preferences
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
