package types

// Diagnostic_Type values accepted by MalariaDiagnostic, plus the sentinel
// that selects a StandardDiagnostic instead.
const (
	DiagnosticBloodSmearParasites  = "BLOOD_SMEAR_PARASITES"
	DiagnosticBloodSmearGametocyte = "BLOOD_SMEAR_GAMETOCYTES"
	DiagnosticPCRParasites         = "PCR_PARASITES"
	DiagnosticPCRGametocytes       = "PCR_GAMETOCYTES"
	DiagnosticPFHRP2               = "PF_HRP2"
	DiagnosticTrueParasiteDensity  = "TRUE_PARASITE_DENSITY"
	DiagnosticFever                = "FEVER"
	DiagnosticTrueInfectionStatus  = "TRUE_INFECTION_STATUS"
)

// MalariaDiagnostic tests an individual with a configurable measurement
// method and sensitivity.
type MalariaDiagnostic struct {
	Class                  string  `json:"class"`
	InterventionName       string  `json:"Intervention_Name"`
	DiagnosticType         string  `json:"Diagnostic_Type"`
	MeasurementSensitivity float64 `json:"Measurement_Sensitivity"`
	DetectionThreshold     float64 `json:"Detection_Threshold"`
	PositiveDiagnosisEvent string  `json:"Positive_Diagnosis_Event,omitempty"`
}

// InterventionClass implements Intervention.
func (*MalariaDiagnostic) InterventionClass() string { return "MalariaDiagnostic" }

// NewMalariaDiagnostic returns a MalariaDiagnostic with schema defaults.
func NewMalariaDiagnostic() *MalariaDiagnostic {
	return &MalariaDiagnostic{
		Class:            "MalariaDiagnostic",
		InterventionName: "MalariaDiagnostic",
		DiagnosticType:   DiagnosticBloodSmearParasites,
	}
}

// StandardDiagnostic reports the individual's true infection status without
// a measurement model.
type StandardDiagnostic struct {
	Class                  string  `json:"class"`
	InterventionName       string  `json:"Intervention_Name"`
	BaseSensitivity        float64 `json:"Base_Sensitivity"`
	BaseSpecificity        float64 `json:"Base_Specificity"`
	DaysToDiagnosis        float64 `json:"Days_To_Diagnosis"`
	EventOrConfig          string  `json:"Event_Or_Config"`
	PositiveDiagnosisEvent string  `json:"Positive_Diagnosis_Event,omitempty"`
}

// InterventionClass implements Intervention.
func (*StandardDiagnostic) InterventionClass() string { return "StandardDiagnostic" }

// NewStandardDiagnostic returns a perfectly sensitive and specific
// StandardDiagnostic, the schema default.
func NewStandardDiagnostic() *StandardDiagnostic {
	return &StandardDiagnostic{
		Class:            "StandardDiagnostic",
		InterventionName: "StandardDiagnostic",
		BaseSensitivity:  1,
		BaseSpecificity:  1,
		EventOrConfig:    "Event",
	}
}
