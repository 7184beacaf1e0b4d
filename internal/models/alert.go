package models

// AlertSeverity orders alerts for presentation.
type AlertSeverity string

const (
	AlertSeverityInfo    AlertSeverity = "info"
	AlertSeverityWarning AlertSeverity = "warning"
)

// Alert is an insight derived from an import batch, e.g. an unusually
// large expense or a likely duplicate. Alerts are derived
// deterministically; presentation and notification are the caller's
// concern.
type Alert struct {
	Severity AlertSeverity `json:"severity"`
	Code     string        `json:"code" example:"duplicate-candidate"`
	Message  string        `json:"message"`
}
