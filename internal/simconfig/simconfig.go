// Package simconfig builds the simulator's config.json parameter file:
// team defaults for the malaria model, vector species presets, and the
// per-simulation patches a sweep applies (run number, feeding behavior).
package simconfig

import (
	"encoding/json"
	"fmt"
	"sort"

	"vectorgen/internal/store"
)

// Habitat is one larval habitat of a vector species.
type Habitat struct {
	HabitatType       string  `json:"Habitat_Type"`
	MaxLarvalCapacity float64 `json:"Max_Larval_Capacity"`
}

// SpeciesParams holds the parameters of one vector species.
type SpeciesParams struct {
	Name                  string    `json:"Name"`
	Anthropophily         float64   `json:"Anthropophily"`
	AdultLifeExpectancy   float64   `json:"Adult_Life_Expectancy"`
	DaysBetweenFeeds      float64   `json:"Days_Between_Feeds"`
	EggBatchSize          float64   `json:"Egg_Batch_Size"`
	IndoorFeedingFraction float64   `json:"Indoor_Feeding_Fraction"`
	Habitats              []Habitat `json:"Habitats"`
}

// Config accumulates simulator parameters before serialization as
// {"parameters": {...}}.
type Config struct {
	params  map[string]any
	species []*SpeciesParams
}

// New returns an empty config.
func New() *Config {
	return &Config{params: make(map[string]any)}
}

// TeamDefaults returns a config pre-loaded with the malaria model defaults
// a campaign-generation run starts from.
func TeamDefaults() *Config {
	c := New()
	c.Set("Simulation_Type", "MALARIA_SIM")
	c.Set("Simulation_Duration", 365)
	c.Set("Simulation_Timestep", 1)
	c.Set("Run_Number", 0)
	c.Set("Infection_Updates_Per_Timestep", 8)
	c.Set("Enable_Demographics_Birth", 1)
	c.Set("Enable_Natural_Mortality", 1)
	c.Set("Enable_Vital_Dynamics", 1)
	c.Set("Age_Initialization_Distribution_Type", "DISTRIBUTION_COMPLEX")
	c.Set("Malaria_Model", "MALARIA_MECHANISTIC_MODEL")
	c.Set("Malaria_Strain_Model", "FALCIPARUM_RANDOM_STRAIN")
	c.Set("Vector_Sampling_Type", "TRACK_ALL_VECTORS")
	c.Set("Insecticides", []any{})
	return c
}

// Set records a top-level parameter.
func (c *Config) Set(name string, v any) { c.params[name] = v }

// Get returns a top-level parameter.
func (c *Config) Get(name string) (any, bool) {
	v, ok := c.params[name]
	return v, ok
}

// speciesPresets are the known vector species and their team-calibrated
// parameters.
var speciesPresets = map[string]SpeciesParams{
	"gambiae": {
		Name:                  "gambiae",
		Anthropophily:         0.65,
		AdultLifeExpectancy:   20,
		DaysBetweenFeeds:      3,
		EggBatchSize:          70,
		IndoorFeedingFraction: 0.95,
		Habitats:              []Habitat{{HabitatType: "TEMPORARY_RAINFALL", MaxLarvalCapacity: 1.125e8}},
	},
	"arabiensis": {
		Name:                  "arabiensis",
		Anthropophily:         0.65,
		AdultLifeExpectancy:   20,
		DaysBetweenFeeds:      3,
		EggBatchSize:          60,
		IndoorFeedingFraction: 0.5,
		Habitats:              []Habitat{{HabitatType: "TEMPORARY_RAINFALL", MaxLarvalCapacity: 1.125e8}},
	},
	"funestus": {
		Name:                  "funestus",
		Anthropophily:         0.65,
		AdultLifeExpectancy:   20,
		DaysBetweenFeeds:      3,
		EggBatchSize:          70,
		IndoorFeedingFraction: 0.86,
		Habitats:              []Habitat{{HabitatType: "WATER_VEGETATION", MaxLarvalCapacity: 2e7}},
	},
}

// AddSpecies appends the preset parameters for each named species.
func (c *Config) AddSpecies(names ...string) error {
	for _, name := range names {
		preset, ok := speciesPresets[name]
		if !ok {
			return fmt.Errorf("unknown vector species %q (have %v)", name, presetNames())
		}
		sp := preset
		sp.Habitats = append([]Habitat(nil), preset.Habitats...)
		c.species = append(c.species, &sp)
	}
	return nil
}

// Species returns the parameters for a previously added species.
func (c *Config) Species(name string) (*SpeciesParams, bool) {
	for _, sp := range c.species {
		if sp.Name == name {
			return sp, true
		}
	}
	return nil, false
}

// SetMaxLarvalCapacity sets the capacity of the species' habitat of the
// given type.
func (c *Config) SetMaxLarvalCapacity(species, habitatType string, capacity float64) error {
	sp, ok := c.Species(species)
	if !ok {
		return fmt.Errorf("species %q not added to config", species)
	}
	for i := range sp.Habitats {
		if sp.Habitats[i].HabitatType == habitatType {
			sp.Habitats[i].MaxLarvalCapacity = capacity
			return nil
		}
	}
	sp.Habitats = append(sp.Habitats, Habitat{HabitatType: habitatType, MaxLarvalCapacity: capacity})
	return nil
}

// SetIndoorFeedingFraction patches the fraction of feeds taken indoors for
// a previously added species.
func (c *Config) SetIndoorFeedingFraction(species string, fraction float64) error {
	sp, ok := c.Species(species)
	if !ok {
		return fmt.Errorf("species %q not added to config", species)
	}
	sp.IndoorFeedingFraction = fraction
	return nil
}

// MarshalJSON emits the {"parameters": {...}} document the simulator
// reads, with Vector_Species_Params folded in.
func (c *Config) MarshalJSON() ([]byte, error) {
	params := make(map[string]any, len(c.params)+1)
	for k, v := range c.params {
		params[k] = v
	}
	if len(c.species) > 0 {
		params["Vector_Species_Params"] = c.species
	}
	return json.Marshal(map[string]any{"parameters": params})
}

// Bytes serializes the config as indented JSON.
func (c *Config) Bytes() ([]byte, error) {
	return json.MarshalIndent(c, "", "    ")
}

// Save writes the config to path atomically.
func (c *Config) Save(path string) error {
	return store.WriteJSON(path, c, 0o644)
}

func presetNames() []string {
	names := make([]string, 0, len(speciesPresets))
	for name := range speciesPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
