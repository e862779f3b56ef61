// Package store provides file-based persistence for generated artifacts.
//
// It contains the experiment manifest store and the atomic JSON write
// helpers shared by the campaign, config and demographics serializers.
// Writes go through a temp file and rename so a crashed run never leaves a
// half-written input behind for the simulator to pick up.
package store
