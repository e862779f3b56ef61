package types

// Campaign is the top-level artifact consumed by the simulator. Events run
// in start-day order; Use_Defaults tells the simulator to fill unset
// parameters from its schema.
type Campaign struct {
	CampaignName string          `json:"Campaign_Name"`
	UseDefaults  int             `json:"Use_Defaults"`
	Events       []CampaignEvent `json:"Events"`
}

// CampaignEvent schedules one coordinator against a set of nodes.
type CampaignEvent struct {
	Class                  string                    `json:"class"`
	EventName              string                    `json:"Event_Name,omitempty"`
	StartDay               float64                   `json:"Start_Day"`
	NodesetConfig          NodeSet                   `json:"Nodeset_Config"`
	EventCoordinatorConfig *StandardEventCoordinator `json:"Event_Coordinator_Config"`
}

// NewCampaignEvent returns a CampaignEvent with its class discriminator set.
func NewCampaignEvent() CampaignEvent {
	return CampaignEvent{Class: "CampaignEvent"}
}

// NodeSet selects the nodes a campaign event applies to.
type NodeSet struct {
	Class    string   `json:"class"`
	NodeList []NodeID `json:"Node_List,omitempty"`
}

// NodeSetFromIDs builds a NodeSetNodeList for ids, or NodeSetAll when ids is
// empty. An empty list means every node receives the intervention.
func NodeSetFromIDs(ids []NodeID) NodeSet {
	if len(ids) == 0 {
		return NodeSet{Class: "NodeSetAll"}
	}
	return NodeSet{Class: "NodeSetNodeList", NodeList: ids}
}
