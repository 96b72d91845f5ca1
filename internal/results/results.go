// Package results derives accuracy and speed from a finished typing run.
package results

import "time"

// Input is everything a run leaves behind.
type Input struct {
	Typed      []rune
	Target     []rune
	TotalWords int
	CharsTyped int
	Errors     int
	StartedAt  time.Time
	EndedAt    time.Time
}

// Record is the summary of one run.
type Record struct {
	TotalWords int
	// CharsTyped counts character keystrokes, including ones later erased.
	CharsTyped int
	// CharsInText is the length of the typed text when the run ended.
	CharsInText int
	// Errors counts every mistyped keystroke, including corrected ones.
	Errors            int
	CorrectChars      int
	UncorrectedErrors int
	StartedAt         time.Time
	EndedAt           time.Time
}

// Compute compares the typed text with the target position by position and
// combines the result with the run counters.
func Compute(in Input) Record {
	r := Record{
		TotalWords:  in.TotalWords,
		CharsTyped:  in.CharsTyped,
		CharsInText: len(in.Typed),
		Errors:      in.Errors,
		StartedAt:   in.StartedAt,
		EndedAt:     in.EndedAt,
	}
	n := min(len(in.Typed), len(in.Target))
	for i := 0; i < n; i++ {
		if in.Typed[i] == in.Target[i] {
			r.CorrectChars++
		} else {
			r.UncorrectedErrors++
		}
	}
	return r
}

// Duration is the time between the first and the finishing keystroke.
func (r Record) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.EndedAt.Before(r.StartedAt) {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

// Accuracy is the share of correctly typed characters in the final text.
func (r Record) Accuracy() float64 {
	if r.CharsInText == 0 {
		return 0
	}
	return float64(r.CorrectChars) / float64(r.CharsInText)
}

// WPM counts displayed words, not five-character units, per minute.
func (r Record) WPM() float64 {
	minutes := r.Duration().Minutes()
	if minutes <= 0 {
		return 0
	}
	return float64(r.TotalWords) / minutes
}
