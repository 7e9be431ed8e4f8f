package repository

import (
	"inventory_dashboard/internal/domain"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const chartDateLayout = "2006-01-02"

type fixtureChartSource struct {
	series map[domain.ChartRange][]domain.ChartDataPoint
	log    *logrus.Logger
}

// NewFixtureChartSource serves the canned series: a week, two weeks and thirty days
// ending on 2024-01-07.
func NewFixtureChartSource(logger *logrus.Logger) domain.ChartSource {
	return &fixtureChartSource{
		series: map[domain.ChartRange][]domain.ChartDataPoint{
			domain.Range7d:  concatPoints(chartFirstWeek),
			domain.Range14d: concatPoints(chartLastWeekOfDecember, chartFirstWeek),
			domain.Range30d: concatPoints(chartMidDecember, chartLastWeekOfDecember, chartFirstWeek),
		},
		log: logger,
	}
}

func (s *fixtureChartSource) ChartData(r domain.ChartRange) ([]domain.ChartDataPoint, error) {
	series, ok := s.series[r]
	if !ok {
		series = s.series[domain.Range7d]
	}
	points := make([]domain.ChartDataPoint, len(series))
	copy(points, series)
	s.log.Debugf("Repository: Serving %d fixture chart points for range %s", len(points), r)
	return points, nil
}

type randomChartSource struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
	log *logrus.Logger
}

// NewRandomChartSource generates one point per day for the trailing window ending today (UTC).
// Stock falls in [200, 700) and demand in [150, 550). rng and now may be nil.
func NewRandomChartSource(rng *rand.Rand, now func() time.Time, logger *logrus.Logger) domain.ChartSource {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}
	if now == nil {
		now = time.Now
	}
	return &randomChartSource{rng: rng, now: now, log: logger}
}

func (s *randomChartSource) ChartData(r domain.ChartRange) ([]domain.ChartDataPoint, error) {
	days := r.Days()
	today := s.now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	points := make([]domain.ChartDataPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		points = append(points, domain.ChartDataPoint{
			Date:   today.AddDate(0, 0, -i).Format(chartDateLayout),
			Stock:  s.rng.IntN(500) + 200,
			Demand: s.rng.IntN(400) + 150,
		})
	}
	s.log.Debugf("Repository: Generated %d random chart points for range %s", len(points), r)
	return points, nil
}
