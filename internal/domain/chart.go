package domain

import "fmt"

type ChartRange string

const (
	Range7d  ChartRange = "7d"
	Range14d ChartRange = "14d"
	Range30d ChartRange = "30d"
)

func ParseChartRange(s string) (ChartRange, error) {
	r := ChartRange(s)
	switch r {
	case Range7d, Range14d, Range30d:
		return r, nil
	default:
		return "", fmt.Errorf("%w: unsupported chart range '%s' (expected 7d, 14d or 30d)", ErrInvalidInput, s)
	}
}

// Days is the number of calendar days the range covers.
func (r ChartRange) Days() int {
	switch r {
	case Range14d:
		return 14
	case Range30d:
		return 30
	default:
		return 7
	}
}

type ChartSource interface {
	ChartData(r ChartRange) ([]ChartDataPoint, error)
}
