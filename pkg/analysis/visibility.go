package analysis

// Score bands shared by visibility gating and suitability verdicts.
const (
	strongBand    = 75
	potentialBand = 50
)

// Gate derives the recruiter visibility decision from a total score and the
// match result. It is a pure function deliberately kept out of the scorer so
// any presentation layer can call it; contact details unlock only when the
// candidate sits in the top band with every mandatory skill matched.
func Gate(totalScore int, match MatchResult) Visibility {
	missing := match.Skills.Missing
	if missing == nil {
		missing = []string{}
	}
	hasAllMandatory := len(missing) == 0

	return Visibility{
		IsRecruiterVisible:     totalScore >= potentialBand,
		IsLimitedVisibility:    (totalScore >= potentialBand && totalScore < strongBand) || !hasAllMandatory,
		IsHidden:               totalScore < potentialBand,
		ContactDetailsUnlocked: totalScore >= strongBand && hasAllMandatory,
		MissingMandatory:       missing,
	}
}
