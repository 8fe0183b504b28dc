package ports

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier surfaces workflow outcomes to the user. Validation failures and
// remote failures arrive with distinct severities so they are never conflated.
type Notifier interface {
	Notify(message string, severity Severity)
}
