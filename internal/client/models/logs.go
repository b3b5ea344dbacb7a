package models

// Server names used by the analytics endpoints.
const (
	ServerPrimary   = "Servidor 1"
	ServerSecondary = "Servidor 2"
)

// Servers lists the known servers in display order.
var Servers = []string{ServerPrimary, ServerSecondary}

// CountsByServer maps server name to label to count. It is the shape of
// both /logs/severity (labels are levels) and /logs/methods (HTTP methods).
type CountsByServer map[string]map[string]int64

// PathResponseTime is one entry of /logs/response-times.
type PathResponseTime struct {
	Path            string  `json:"path"`
	AvgResponseTime float64 `json:"avgResponseTime"`
}

// ResponseTimes maps server name to per-path averages in milliseconds.
type ResponseTimes map[string][]PathResponseTime

// UserStats maps server name to the number of log records it holds.
type UserStats map[string]int64

// LogEntry is a raw log document from /logs. The backend does not fix
// its schema so fields are kept as decoded JSON.
type LogEntry map[string]any

// Analytics bundles the four aggregates the dashboard is drawn from.
type Analytics struct {
	Severity      CountsByServer
	Methods       CountsByServer
	ResponseTimes ResponseTimes
	Users         UserStats
}
