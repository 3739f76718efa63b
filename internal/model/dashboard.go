package model

// DashboardSummary aggregates the per-patient KPI view: session counts
// inside the selected time frame, the latest quality metrics and the
// upcoming reminder dates.
type DashboardSummary struct {
	Sessions       SessionCounts  `json:"sessions"`
	QualityMetrics QualityMetrics `json:"qualityMetrics"`
	Reminders      ReminderDates  `json:"reminders"`
}

type SessionCounts struct {
	TimeFrame string `json:"timeFrame"`
	Chronic   int    `json:"chronic"`
	Acute     int    `json:"acute"`
}

type QualityMetrics struct {
	KtvTrend       string `json:"ktvTrend"`
	URRPerformance string `json:"urrPerformance"`
	WeightAnalysis string `json:"weightAnalysis"`
}

type ReminderDates struct {
	ScriptExpiryDate  string `json:"scriptExpiryDate"`
	LastPathologyTest string `json:"lastPathologyTest"`
	NextFollowUpTask  string `json:"nextFollowUpTask"`
}
