package analytics

type AlertLevel string

const (
	AlertNone     AlertLevel = "NONE"
	AlertWarning  AlertLevel = "WARNING"
	AlertCritical AlertLevel = "CRITICAL"
)

// AlertThresholds are delinquency-rate percentages. Critical fires above
// Critical, warning above Warning.
type AlertThresholds struct {
	Warning  float64
	Critical float64
}

// DefaultThresholds match the operational limits of the original dashboard.
var DefaultThresholds = AlertThresholds{Warning: 5, Critical: 10}

func EvaluateAlert(delinquencyRate float64, t AlertThresholds) AlertLevel {
	switch {
	case delinquencyRate > t.Critical:
		return AlertCritical
	case delinquencyRate > t.Warning:
		return AlertWarning
	default:
		return AlertNone
	}
}
