package sim

import (
	"math"
	"sort"

	"github.com/xtding233/replay-backend/internal/league"
)

// Stats summarizes an integer sample distribution.
type Stats struct {
	Mean   float64 `json:"mean"`
	Var    float64 `json:"var"`
	StdDev float64 `json:"stddev"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
	// Optional: raw samples if caller needs histograms/exports
	Samples []int `json:"-"`
}

// Report aggregates many simulated games of the same matchup.
type Report struct {
	Trials int `json:"trials"`

	HomeWins int `json:"home_wins"`
	AwayWins int `json:"away_wins"`
	Ties     int `json:"ties"` // games called still tied at the inning cap

	HomeWinRate float64 `json:"home_win_rate"`
	AwayWinRate float64 `json:"away_win_rate"`
	TieRate     float64 `json:"tie_rate"`

	HomeRuns  Stats `json:"home_runs"`
	AwayRuns  Stats `json:"away_runs"`
	TotalRuns Stats `json:"total_runs"`
}

// calcStats computes mean/variance/percentiles for integer samples.
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	// mean
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	// variance (population)
	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)
	stddev := math.Sqrt(variance)

	// percentiles
	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	percentile := func(p float64) float64 {
		if n == 1 {
			return float64(cp[0])
		}
		if p <= 0 {
			return float64(cp[0])
		}
		if p >= 1 {
			return float64(cp[n-1])
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return float64(cp[i])
		}
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	return Stats{
		Mean:    mean,
		Var:     variance,
		StdDev:  stddev,
		P50:     percentile(0.50),
		P90:     percentile(0.90),
		P99:     percentile(0.99),
		Samples: xs,
	}
}

// RunMonteCarlo plays the matchup trials times and returns summary
// stats. Each trial gets its own derived seed, so a run is fully
// reproducible from (seed, trials) while trials stay independent.
// Pitcher selection re-rolls per trial to cover rotation variance.
func RunMonteCarlo(home, away *league.Team, tuning Tuning, trials int, seed uint64) (Report, error) {
	if trials <= 0 {
		return Report{}, nil
	}

	homeRuns := make([]int, trials)
	awayRuns := make([]int, trials)
	totalRuns := make([]int, trials)

	rep := Report{Trials: trials}
	for i := 0; i < trials; i++ {
		rng := NewSeededRNG(seed + uint64(i))

		hp, err := StartingPitcher(home, rng)
		if err != nil {
			return Report{}, err
		}
		ap, err := StartingPitcher(away, rng)
		if err != nil {
			return Report{}, err
		}

		g, err := NewGame(home, away, hp, ap, tuning, rng, nil)
		if err != nil {
			return Report{}, err
		}
		res, err := g.Play()
		if err != nil {
			return Report{}, err
		}

		homeRuns[i] = res.HomeScore
		awayRuns[i] = res.AwayScore
		totalRuns[i] = res.HomeScore + res.AwayScore
		switch res.Winner {
		case HomeWins:
			rep.HomeWins++
		case AwayWins:
			rep.AwayWins++
		default:
			rep.Ties++
		}
	}

	ft := float64(trials)
	rep.HomeWinRate = float64(rep.HomeWins) / ft
	rep.AwayWinRate = float64(rep.AwayWins) / ft
	rep.TieRate = float64(rep.Ties) / ft
	rep.HomeRuns = calcStats(homeRuns)
	rep.AwayRuns = calcStats(awayRuns)
	rep.TotalRuns = calcStats(totalRuns)
	return rep, nil
}
