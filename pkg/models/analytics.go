package models

// TrackEventRequest is the payload for the analytics write endpoint
type TrackEventRequest struct {
	SessionID string         `json:"session_id" validate:"required"`
	EventType string         `json:"event_type" validate:"required"`
	EventData map[string]any `json:"event_data,omitempty"`
	Step      string         `json:"step,omitempty"`
}

// ProductCount is a product name with its selection count
type ProductCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// SimulationStats counts visualization outcomes
type SimulationStats struct {
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

// AnalyticsOverview is the admin dashboard aggregate
type AnalyticsOverview struct {
	TotalSessions   int             `json:"totalSessions"`
	TotalLeads      int             `json:"totalLeads"`
	Funnel          map[string]int  `json:"funnel"`
	RecentLeads     []LeadResponse  `json:"recentLeads"`
	PopularProducts []ProductCount  `json:"popularProducts"`
	SimulationStats SimulationStats `json:"simulationStats"`
	CTAClicks       map[string]int  `json:"ctaClicks"`
	PeriodDays      int             `json:"periodDays"`
}

// ActivityLogEntry is an admin-visible operational log line
type ActivityLogEntry struct {
	ID        int            `json:"id"`
	Action    string         `json:"action"`
	Status    string         `json:"status"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt string         `json:"timestamp"`
}
