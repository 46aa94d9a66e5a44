package dialect

// Classification is the result of scoring a program's identifier evidence.
type Classification struct {
	Kind          Kind
	Score         int
	TotalScore    int
	RunnerUp      Kind
	RunnerUpScore int
}

// Classifier scores evidence and picks a dominant dialect. Callers apply
// their own confidence threshold and dominance margin.
type Classifier struct{}

// Classify aggregates e's hints per dialect and reports the best and
// runner-up.
func (Classifier) Classify(e *Evidence) Classification {
	if e == nil || len(e.hints) == 0 {
		return Classification{Kind: Unknown}
	}

	var scores [kindCount]int
	total := 0
	for _, h := range e.hints {
		if h.Score <= 0 || h.Dialect <= Unknown || h.Dialect >= kindCount {
			continue
		}
		scores[h.Dialect] += h.Score
		total += h.Score
	}

	best, bestScore := Unknown, 0
	runner, runnerScore := Unknown, 0
	for k := Rust; k < kindCount; k++ {
		switch {
		case scores[k] > bestScore:
			runner, runnerScore = best, bestScore
			best, bestScore = k, scores[k]
		case scores[k] > runnerScore:
			runner, runnerScore = k, scores[k]
		}
	}

	return Classification{
		Kind:          best,
		Score:         bestScore,
		TotalScore:    total,
		RunnerUp:      runner,
		RunnerUpScore: runnerScore,
	}
}
