// Package main runs binconvd, the HTTP front end for the converter. It serves
// the single-page UI, a stateless JSON conversion endpoint and shell sessions
// held in memory. See package internal/httpapi for the API.
//
// # Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - The default listen address is :8080.
//   - SIGINT and SIGTERM trigger a graceful shutdown that waits up to five
//     seconds for in-flight requests.
//   - Log level defaults to info so the access log is visible.
package main
