// Package experiment composes sweeps, input builders, the experiment store
// and a platform into runnable experiments.
//
// The service owns the sequence every driver repeats: expand the sweep,
// generate per-simulation campaign and config files, persist the manifest,
// create the experiment on the platform, and run it.
package experiment
