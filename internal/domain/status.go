package domain

type Status string

const (
	StatusHealthy  Status = "healthy"
	StatusLow      Status = "low"
	StatusCritical Status = "critical"
)

// Classify maps a stock/demand pair onto exactly one Status.
// Surplus is healthy, an exact balance is low and a shortfall is critical.
func Classify(stock, demand int) Status {
	switch {
	case stock > demand:
		return StatusHealthy
	case stock == demand:
		return StatusLow
	default:
		return StatusCritical
	}
}

func IsValidStatus(status Status) bool {
	switch status {
	case StatusHealthy, StatusLow, StatusCritical:
		return true
	default:
		return false
	}
}

// ParseStatus recognizes only the three lower-case status names.
func ParseStatus(s string) (Status, bool) {
	status := Status(s)
	return status, IsValidStatus(status)
}
