// Package platform provides the experiment execution backends.
//
// Local materializes each simulation's input bundle into a working
// directory and optionally executes a simulator binary per simulation with
// bounded parallelism. HTTP submits the same bundles to a remote
// orchestration service and polls it for completion.
//
// Both implement the domain.Platform interface; drivers and the CLI pick
// one through app wiring.
package platform
