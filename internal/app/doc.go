// Package app wires application dependencies for the CLI and the daemon.
//
// Config is assembled from defaults, an optional YAML file and command-line
// flags, in that order. NewWire builds the converter, the conversion service
// (local, or remote when Config.Server is set), the clipboard and the logger
// from it.
package app
