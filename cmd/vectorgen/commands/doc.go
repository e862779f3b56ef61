// Package commands defines the vectorgen CLI and wires dependencies for
// subcommands.
//
// # Commands
//
//   - build    Write a default space-spraying campaign file
//   - sweep    Expand a YAML sweep spec into a materialized experiment
//   - run      Execute a materialized experiment with the simulator
//   - inspect  Summarize a campaign file
//
// # Implementation
//
// The root command loads config from the environment, applies flag
// overrides, and builds the dependency graph (store, platform, experiment
// service) before any subcommand runs, so handlers share one app context.
package commands
