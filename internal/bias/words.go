package bias

import "regexp"

// Curated word lists for pattern-based bias detection. These are static
// lookups, not ML inference.

var masculineCodedWords = []string{
	"aggressive", "ambitious", "assertive", "competitive", "confident",
	"decisive", "determined", "dominant", "independent", "leader",
	"logical", "objective", "outspoken", "strong", "tough",
}

var feminineCodedWords = []string{
	"collaborative", "compassionate", "cooperative", "emotional",
	"gentle", "helpful", "nurturing", "sensitive", "supportive",
	"understanding", "warm", "caring", "empathetic",
}

// agePatterns match age-coded phrasing in job text.
var agePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{2,3}\s*years?\s+old\b`),
	regexp.MustCompile(`\b(?:recent|new)\s+graduate\b`),
	regexp.MustCompile(`\b(?:fresh|young)\s+talent\b`),
	regexp.MustCompile(`\bseasoned\s+professional\b`),
	regexp.MustCompile(`\bdigital\s+native\b`),
}

// institutionPrestigeKeywords flag prestige-based institution filtering.
var institutionPrestigeKeywords = []string{
	"ivy league", "top tier", "prestigious", "elite",
	"top university", "leading institution",
}
