package types

// SpaceSpraying is a node-targeted intervention that kills vectors present
// in the node. Spray coverage scales the current efficacy of the killing
// waning effect.
type SpaceSpraying struct {
	Class                   string   `json:"class"`
	InterventionName        string   `json:"Intervention_Name"`
	InsecticideName         string   `json:"Insecticide_Name,omitempty"`
	SprayCoverage           float64  `json:"Spray_Coverage"`
	CostToConsumer          float64  `json:"Cost_To_Consumer"`
	DisqualifyingProperties []string `json:"Disqualifying_Properties,omitempty"`
	DontAllowDuplicates     int      `json:"Dont_Allow_Duplicates"`
	NewPropertyValue        string   `json:"New_Property_Value,omitempty"`
	KillingConfig           Waning   `json:"Killing_Config,omitempty"`
}

// InterventionClass implements Intervention.
func (*SpaceSpraying) InterventionClass() string { return "SpaceSpraying" }

// SpatialRepellent is a node-targeted intervention that repels meal-seeking
// vectors before they feed.
type SpatialRepellent struct {
	Class                   string   `json:"class"`
	InterventionName        string   `json:"Intervention_Name"`
	InsecticideName         string   `json:"Insecticide_Name,omitempty"`
	SprayCoverage           float64  `json:"Spray_Coverage"`
	CostToConsumer          float64  `json:"Cost_To_Consumer"`
	DisqualifyingProperties []string `json:"Disqualifying_Properties,omitempty"`
	DontAllowDuplicates     int      `json:"Dont_Allow_Duplicates"`
	NewPropertyValue        string   `json:"New_Property_Value,omitempty"`
	RepellingConfig         Waning   `json:"Repelling_Config,omitempty"`
}

// InterventionClass implements Intervention.
func (*SpatialRepellent) InterventionClass() string { return "SpatialRepellent" }

// IRSHousingModification is an individual-targeted indoor residual spraying
// intervention with independent killing and repelling effects.
type IRSHousingModification struct {
	Class                   string   `json:"class"`
	InterventionName        string   `json:"Intervention_Name"`
	InsecticideName         string   `json:"Insecticide_Name,omitempty"`
	CostToConsumer          float64  `json:"Cost_To_Consumer"`
	DisqualifyingProperties []string `json:"Disqualifying_Properties,omitempty"`
	DontAllowDuplicates     int      `json:"Dont_Allow_Duplicates"`
	NewPropertyValue        string   `json:"New_Property_Value,omitempty"`
	KillingConfig           Waning   `json:"Killing_Config,omitempty"`
	RepellingConfig         Waning   `json:"Repelling_Config,omitempty"`
}

// InterventionClass implements Intervention.
func (*IRSHousingModification) InterventionClass() string { return "IRSHousingModification" }

// UsageDependentBednet is an individual-targeted bednet whose protection
// applies only while the net is in use; usage follows its own waning
// schedule and the net is discarded after the expiration period.
type UsageDependentBednet struct {
	Class                        string   `json:"class"`
	InterventionName             string   `json:"Intervention_Name"`
	InsecticideName              string   `json:"Insecticide_Name,omitempty"`
	CostToConsumer               float64  `json:"Cost_To_Consumer"`
	DisqualifyingProperties      []string `json:"Disqualifying_Properties,omitempty"`
	DontAllowDuplicates          int      `json:"Dont_Allow_Duplicates"`
	NewPropertyValue             string   `json:"New_Property_Value,omitempty"`
	KillingConfig                Waning   `json:"Killing_Config,omitempty"`
	BlockingConfig               Waning   `json:"Blocking_Config,omitempty"`
	RepellingConfig              Waning   `json:"Repelling_Config,omitempty"`
	UsageConfigList              []Waning `json:"Usage_Config_List,omitempty"`
	ExpirationPeriodDistribution string   `json:"Expiration_Period_Distribution"`
	ExpirationPeriodConstant     float64  `json:"Expiration_Period_Constant"`
	DiscardEvent                 string   `json:"Discard_Event,omitempty"`
}

// InterventionClass implements Intervention.
func (*UsageDependentBednet) InterventionClass() string { return "UsageDependentBednet" }
