package domain

import (
	interfaces "vectorgen/internal/domain/interfaces"
	types "vectorgen/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	NodeID           = types.NodeID
	ExperimentID     = types.ExperimentID
	SimulationID     = types.SimulationID
	Tags             = types.Tags
	PropertyPairs    = types.PropertyPairs
	Campaign         = types.Campaign
	CampaignEvent    = types.CampaignEvent
	NodeSet          = types.NodeSet
	Intervention     = types.Intervention
	Waning           = types.Waning
	Experiment       = types.Experiment
	Simulation       = types.Simulation
	SimulationStatus = types.SimulationStatus
)

// Simulation status values.
const (
	SimCreated   = types.SimCreated
	SimRunning   = types.SimRunning
	SimSucceeded = types.SimSucceeded
	SimFailed    = types.SimFailed
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Platform        = interfaces.Platform
	ExperimentStore = interfaces.ExperimentStore
)
