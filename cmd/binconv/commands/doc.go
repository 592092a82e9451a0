// Package commands defines the binconv CLI and wires dependencies for subcommands.
//
// # Commands
//
//   - encode    Convert text to space-separated binary
//   - decode    Convert binary back to text
//   - shell     Interactive converter with swap, copy and clear
//
// # Implementation
//
// The root command loads the config (defaults, then <home>/config.yaml, then
// flags) and builds the dependency graph before any subcommand runs. With
// --server set, conversions go to a binconvd daemon instead of running
// in-process.
package commands
