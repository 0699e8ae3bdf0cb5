package util

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	rollsCounter          *prometheus.CounterVec
	betsPlacedCounter     *prometheus.CounterVec
	betsRejectedCounter   *prometheus.CounterVec
	payoutsCounter        *prometheus.CounterVec
	sevenOutCounter       prometheus.Counter
	seatedPlayersGauge    prometheus.Gauge
	snapshotFailedCounter prometheus.Counter
}

func (m *metrics) RollCompleted(total int) {
	m.rollsCounter.WithLabelValues(strconv.Itoa(total)).Inc()
}

func (m *metrics) BetPlaced(betType string) {
	m.betsPlacedCounter.WithLabelValues(betType).Inc()
}

func (m *metrics) BetRejected(betType string) {
	m.betsRejectedCounter.WithLabelValues(betType).Inc()
}

func (m *metrics) PayoutCredited(betType string, amount int64) {
	m.payoutsCounter.WithLabelValues(betType).Add(float64(amount))
}

func (m *metrics) SevenOut() {
	m.sevenOutCounter.Inc()
}

func (m *metrics) SetSeatedPlayers(count int) {
	m.seatedPlayersGauge.Set(float64(count))
}

func (m *metrics) SnapshotFailed() {
	m.snapshotFailedCounter.Inc()
}

var Metrics = &metrics{
	rollsCounter: promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "craps_rolls_total",
		Help: "Total number of resolved rolls by dice total",
	}, []string{"total"}),
	betsPlacedCounter: promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "craps_bets_placed_total",
		Help: "Total number of accepted bet placements",
	}, []string{"bet"}),
	betsRejectedCounter: promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "craps_bets_rejected_total",
		Help: "Total number of rejected bet placements",
	}, []string{"bet"}),
	payoutsCounter: promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "craps_payouts_credited_total",
		Help: "Currency units credited to player balances by bet type",
	}, []string{"bet"}),
	sevenOutCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "craps_seven_outs_total",
		Help: "Total number of seven-outs",
	}),
	seatedPlayersGauge: promauto.NewGauge(prometheus.GaugeOpts{
		Name: "craps_seated_players",
		Help: "Number of players seated at the table",
	}),
	snapshotFailedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "craps_snapshot_save_failures_total",
		Help: "Total number of table snapshots that could not be persisted",
	}),
}
