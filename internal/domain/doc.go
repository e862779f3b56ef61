// Package domain defines core data models and interfaces shared across the
// toolkit. It contains plain types (campaign object model, experiment
// records) and contracts (interfaces) only.
package domain
