// Package demographics builds the demographics input file describing the
// simulated population.
package demographics

import (
	"encoding/json"

	"vectorgen/internal/domain/types"
	"vectorgen/internal/store"
)

// Metadata describes the provenance of a demographics file.
type Metadata struct {
	IDReference string `json:"IdReference"`
	NodeCount   int    `json:"NodeCount"`
	Tool        string `json:"Tool"`
}

// NodeAttributes places a node and sets its initial population.
type NodeAttributes struct {
	Latitude          float64 `json:"Latitude"`
	Longitude         float64 `json:"Longitude"`
	InitialPopulation int     `json:"InitialPopulation"`
	FacilityName      string  `json:"FacilityName,omitempty"`
}

// Node is one demographics node.
type Node struct {
	NodeID         types.NodeID   `json:"NodeID"`
	NodeAttributes NodeAttributes `json:"NodeAttributes"`
}

// IndividualAttributes are the default per-individual distributions.
type IndividualAttributes struct {
	AgeDistributionFlag  int     `json:"AgeDistributionFlag"`
	AgeDistribution1     float64 `json:"AgeDistribution1"`
	AgeDistribution2     float64 `json:"AgeDistribution2"`
	RiskDistributionFlag int     `json:"RiskDistributionFlag"`
	RiskDistribution1    float64 `json:"RiskDistribution1"`
	RiskDistribution2    float64 `json:"RiskDistribution2"`
}

// Defaults apply to every node unless overridden.
type Defaults struct {
	IndividualAttributes IndividualAttributes `json:"IndividualAttributes"`
}

// Demographics is the serializable demographics artifact.
type Demographics struct {
	Metadata Metadata `json:"Metadata"`
	Defaults Defaults `json:"Defaults"`
	Nodes    []Node   `json:"Nodes"`
}

// FromTemplateNode builds a single-node demographics file: one node at
// (lat, lon) with the given initial population. The usual quick start for
// sweep experiments that do not model space.
func FromTemplateNode(lat, lon float64, pop int, name string, forcedID types.NodeID) *Demographics {
	if forcedID == 0 {
		forcedID = 1
	}
	return &Demographics{
		Metadata: Metadata{
			IDReference: "vectorgen",
			NodeCount:   1,
			Tool:        "vectorgen",
		},
		Defaults: Defaults{
			IndividualAttributes: IndividualAttributes{
				// Exponential age distribution with a mean of 20 years.
				AgeDistributionFlag: 3,
				AgeDistribution1:    0.000137,
			},
		},
		Nodes: []Node{{
			NodeID: forcedID,
			NodeAttributes: NodeAttributes{
				Latitude:          lat,
				Longitude:         lon,
				InitialPopulation: pop,
				FacilityName:      name,
			},
		}},
	}
}

// Bytes serializes the demographics as indented JSON.
func (d *Demographics) Bytes() ([]byte, error) {
	return json.MarshalIndent(d, "", "    ")
}

// Save writes the demographics to path atomically.
func (d *Demographics) Save(path string) error {
	return store.WriteJSON(path, d, 0o644)
}
