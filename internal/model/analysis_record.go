package model

import "time"

// AnalysisRecord is one row of analysis history: the code that was analyzed
// and its best interpretation at the time, if any.
type AnalysisRecord struct {
	AnalyzedAt      time.Time
	Production      *time.Time
	Expiry          *time.Time
	Code            string
	Pattern         string
	Tier            string
	ID              int64
	Confidence      int
	Interpretations int
}

// Recognized reports whether the analysis produced at least one interpretation.
func (r *AnalysisRecord) Recognized() bool {
	return r.Interpretations > 0
}
