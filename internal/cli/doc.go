// Package cli provides the interactive Oryn tournament client.
//
// It wires configuration, the local store and the application services into
// a REPL. Typical flow: restore the previous session if it is still valid,
// sign in with an identity token otherwise, then browse contestants, vote,
// buy vote packages or rate the platform. Privileged identities also get the
// administrator commands.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
