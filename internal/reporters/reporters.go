// Package reporters builds the custom_reports.json file enabling the
// simulator's built-in vector reports.
package reporters

import (
	"encoding/json"

	"vectorgen/internal/store"
)

// Report is implemented by every built-in report config.
type Report interface {
	ReportClass() string
}

// ReportVectorStats reports per-timestep vector population statistics.
type ReportVectorStats struct {
	SpeciesList       []string `json:"Species_List,omitempty"`
	StratifyBySpecies int      `json:"Stratify_By_Species"`
	IncludeWolbachia  int      `json:"Include_Wolbachia_Columns"`
	IncludeGestation  int      `json:"Include_Gestation_Columns"`
}

// ReportClass implements Report.
func (*ReportVectorStats) ReportClass() string { return "ReportVectorStats" }

// ReportVectorGenetics reports allele and genome counts for one species.
type ReportVectorGenetics struct {
	Species                   string `json:"Species"`
	GenderDataType            string `json:"Gender_Data_Type"`
	IncludeVectorStateColumns int    `json:"Include_Vector_State_Columns"`
}

// ReportClass implements Report.
func (*ReportVectorGenetics) ReportClass() string { return "ReportVectorGenetics" }

// Builtin accumulates enabled reports.
type Builtin struct {
	reports []Report
}

// NewBuiltin returns an empty report set.
func NewBuiltin() *Builtin { return &Builtin{} }

// Add enables a report.
func (b *Builtin) Add(r Report) { b.reports = append(b.reports, r) }

// Len returns the number of enabled reports.
func (b *Builtin) Len() int { return len(b.reports) }

// MarshalJSON emits the Custom_Reports document the simulator reads:
// reports of the same class are grouped under one Enabled block.
func (b *Builtin) MarshalJSON() ([]byte, error) {
	grouped := make(map[string]*reportGroup)
	for _, r := range b.reports {
		g, ok := grouped[r.ReportClass()]
		if !ok {
			g = &reportGroup{Enabled: 1}
			grouped[r.ReportClass()] = g
		}
		g.Reports = append(g.Reports, r)
	}
	return json.Marshal(map[string]any{"Custom_Reports": grouped})
}

type reportGroup struct {
	Enabled int      `json:"Enabled"`
	Reports []Report `json:"Reports"`
}

// Bytes serializes the report set as indented JSON.
func (b *Builtin) Bytes() ([]byte, error) {
	return json.MarshalIndent(b, "", "    ")
}

// Save writes the report set to path atomically.
func (b *Builtin) Save(path string) error {
	return store.WriteJSON(path, b, 0o644)
}
