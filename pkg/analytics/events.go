package analytics

// Event types the funnel understands. The overview aggregation keys off
// these names, so producers must not invent variants.
const (
	EventSessionStarted      = "session_started"
	EventPageView            = "page_view"
	EventStepEntered         = "step_entered"
	EventStepCompleted       = "step_completed"
	EventPhotoUploaded       = "photo_uploaded"
	EventProductSelected     = "product_selected"
	EventSimulationGenerated = "simulation_generated"
	EventSimulationFailed    = "simulation_failed"
	EventQuoteViewed         = "quote_viewed"
	EventCTAClicked          = "cta_clicked"
	EventLeadCaptured        = "lead_captured"
)
