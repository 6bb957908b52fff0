// Package domain contains the core temperature model for Gradus.
//
// The domain is UI- and IO-agnostic: it does not depend on the terminal,
// logging, or parsing of user input. The CLI and TUI layers map into/from
// these types.
package domain
