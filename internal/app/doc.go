// Package app wires application dependencies for the CLI and the example
// drivers.
//
// It builds the concrete store, platform and services from Config,
// exposing them via the Wire struct for commands to use.
package app
