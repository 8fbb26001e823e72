package types

// Status classifies the outcome of converting a single file.
type Status int

const (
	// Converted means the file contained the legacy construct and was rewritten.
	Converted Status = iota
	// Unchanged means the file was left as-is, either because it is
	// already converted or because the construct could not be recognized.
	Unchanged
	// Failed means the file could not be read or written.
	Failed
)

func (s Status) String() string {
	switch s {
	case Converted:
		return "converted"
	case Unchanged:
		return "unchanged"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result records the outcome of converting one file.
type Result struct {
	Path   string
	Label  string
	Status Status
	Output string // rewritten contents, retained for dry-run display
	Err    error  // diagnostic for Unchanged, I/O error for Failed
}

// Summary aggregates results across a batch.
type Summary struct {
	Converted int
	Unchanged int
	Failed    int
}

// Summarize tallies a slice of per-file results.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case Converted:
			s.Converted++
		case Unchanged:
			s.Unchanged++
		case Failed:
			s.Failed++
		}
	}
	return s
}
