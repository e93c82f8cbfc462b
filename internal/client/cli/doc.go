// Package cli is the forum's user-facing layer.
//
// Controller turns Command values (Login, Register, CreateTopic, ...) into
// store and session calls, posts notices for the outcome and re-renders the
// topic list. App wires a Controller from config.Config and drives it from
// an interactive REPL; NewRootCommand exposes the REPL and the batch
// subcommands (topics, export, import) as a cobra command tree.
package cli
