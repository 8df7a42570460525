package worker

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/termsnake/termsnake/rules"
)

var (
	tickDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "termsnake",
			Subsystem: "worker",
			Name:      "tick_duration_seconds",
			Help:      "Time spent advancing the rules engine per tick.",
		},
	)
	applesEaten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "termsnake",
			Subsystem: "worker",
			Name:      "apples_eaten",
			Help:      "Apples eaten across all games.",
		},
	)
	currentScore = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "termsnake",
			Subsystem: "worker",
			Name:      "score",
			Help:      "Score of the running game.",
		},
	)
	gamesEnded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "termsnake",
			Subsystem: "worker",
			Name:      "games_ended",
			Help:      "Games finished, by cause.",
		},
		[]string{"cause"},
	)
)

func init() {
	prometheus.MustRegister(tickDuration, applesEaten, currentScore, gamesEnded)
}

func observeTick(game *rules.Game, scoreBefore int, d time.Duration) {
	tickDuration.Observe(d.Seconds())
	currentScore.Set(float64(game.Score))
	if game.Score > scoreBefore {
		applesEaten.Inc()
	}
}
