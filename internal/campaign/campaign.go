// Package campaign builds the campaign artifact consumed by the simulator.
//
// A Campaign collects the events the intervention builders append and
// serializes them in the simulator's JSON shape. The schema path is carried
// alongside so drivers can record which simulator build the campaign was
// generated against.
package campaign

import (
	"encoding/json"
	"fmt"

	"vectorgen/internal/domain/types"
	"vectorgen/internal/store"
)

// Campaign accumulates campaign events before serialization.
type Campaign struct {
	name       string
	schemaPath string
	events     []types.CampaignEvent
}

// New returns an empty campaign named name.
func New(name string) *Campaign {
	return &Campaign{name: name}
}

// SetSchemaPath records the simulator schema this campaign targets.
func (c *Campaign) SetSchemaPath(path string) { c.schemaPath = path }

// SchemaPath returns the recorded simulator schema path.
func (c *Campaign) SchemaPath() string { return c.schemaPath }

// Add appends a campaign event.
func (c *Campaign) Add(ev types.CampaignEvent) { c.events = append(c.events, ev) }

// Len returns the number of events added so far.
func (c *Campaign) Len() int { return len(c.events) }

// Campaign returns the serializable artifact.
func (c *Campaign) Campaign() types.Campaign {
	name := c.name
	if name == "" {
		name = "campaign.json"
	}
	return types.Campaign{
		CampaignName: name,
		UseDefaults:  1,
		Events:       c.events,
	}
}

// Bytes serializes the campaign as indented JSON.
func (c *Campaign) Bytes() ([]byte, error) {
	return json.MarshalIndent(c.Campaign(), "", "    ")
}

// Save writes the campaign to path atomically.
func (c *Campaign) Save(path string) error {
	if len(c.events) == 0 {
		return fmt.Errorf("campaign has no events")
	}
	return store.WriteJSON(path, c.Campaign(), 0o644)
}

// Load reads a campaign artifact generically for inspection. Intervention
// configs come back as maps; the typed model is write-side only.
func Load(path string) (types.Campaign, error) {
	var (
		raw struct {
			CampaignName string            `json:"Campaign_Name"`
			UseDefaults  int               `json:"Use_Defaults"`
			Events       []json.RawMessage `json:"Events"`
		}
		out types.Campaign
	)
	if err := store.ReadJSON(path, &raw); err != nil {
		return out, err
	}
	out.CampaignName = raw.CampaignName
	out.UseDefaults = raw.UseDefaults
	for i, ev := range raw.Events {
		var decoded genericEvent
		if err := json.Unmarshal(ev, &decoded); err != nil {
			return out, fmt.Errorf("event %d: %w", i, err)
		}
		out.Events = append(out.Events, types.CampaignEvent{
			Class:         decoded.Class,
			EventName:     decoded.EventName,
			StartDay:      decoded.StartDay,
			NodesetConfig: decoded.NodesetConfig,
		})
	}
	return out, nil
}

type genericEvent struct {
	Class         string        `json:"class"`
	EventName     string        `json:"Event_Name"`
	StartDay      float64       `json:"Start_Day"`
	NodesetConfig types.NodeSet `json:"Nodeset_Config"`
}
