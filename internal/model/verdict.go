package model

// Verdict is a human-friendly reading of a comparison's sign.
// Keep these values stable; they are intended for CSV and API output.
type Verdict string

const (
	VerdictBuying  Verdict = "BUYING"
	VerdictRenting Verdict = "RENTING"
	VerdictEven    Verdict = "EVEN"
)

func VerdictFromDifference(difference float64) Verdict {
	switch {
	case difference > 0:
		return VerdictBuying
	case difference < 0:
		return VerdictRenting
	default:
		return VerdictEven
	}
}
