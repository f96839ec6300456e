package experiments

import "ludo/experiments/metrics"

// Summary aggregates a batch of game records.
type Summary struct {
	Games      int
	Finished   int
	MeanRolls  float64
	MeanSteps  float64
	MaxRolls   int
	Blocked    int
	Wasted     int
	Throughput float64 // Games per second of wall time
}

func Summarize(records []metrics.GameRecord) Summary {
	s := Summary{Games: len(records)}
	if len(records) == 0 {
		return s
	}

	var rolls, steps int
	start, end := records[0].StartTime, records[0].EndTime
	for _, r := range records {
		rolls += r.Rolls
		steps += r.Steps
		s.Blocked += r.Blocked
		s.Wasted += r.Wasted
		if r.Finished {
			s.Finished++
		}
		if r.Rolls > s.MaxRolls {
			s.MaxRolls = r.Rolls
		}
		if r.StartTime.Before(start) {
			start = r.StartTime
		}
		if r.EndTime.After(end) {
			end = r.EndTime
		}
	}

	s.MeanRolls = float64(rolls) / float64(len(records))
	s.MeanSteps = float64(steps) / float64(len(records))
	if elapsed := end.Sub(start); elapsed > 0 {
		s.Throughput = float64(len(records)) / elapsed.Seconds()
	}
	return s
}

