// Package app contains the application lifecycle. It defines the App struct,
// its configuration, and the run sequence, decoupled from any specific
// entrypoint like a CLI.
package app
