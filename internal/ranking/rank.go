// Package ranking sorts scored candidates into a stable, deterministic total
// order with tie-breaking, optional diversity adjustment, and per-candidate
// ranking explanations.
package ranking

import (
	"fmt"
	"math"
	"sort"

	"github.com/jonathan/candidate-matcher/internal/types"
)

// Options controls a ranking pass.
type Options struct {
	// DiversityWeight in [0,1] blends a diversity bonus into the sort key:
	// final = (1-w)*overall + w*diversity. Zero disables the adjustment.
	DiversityWeight float64
	// TieEpsilon is the overall-score distance within which candidates count
	// as tied and the tie-break cascade applies.
	TieEpsilon float64
}

// Rank sorts results descending by overall score, breaks ties
// deterministically, and assigns contiguous 1-based ranks. The tie-break
// cascade is: higher experience component, higher education component, more
// recent resume submission, then candidate ID lexicographic order as the
// final total-order guarantee. Profiles supply submission timestamps and
// diversity attributes; a missing profile only weakens those tie-breaks.
//
// The input slice is sorted in place and returned.
func Rank(results []types.MatchResult, profiles map[string]*types.CandidateProfile, opts Options) []types.MatchResult {
	keys := make(map[string]float64, len(results))
	if opts.DiversityWeight > 0 {
		diversity := diversityScores(results, profiles)
		for i := range results {
			id := results[i].CandidateID
			results[i].DiversityScore = diversity[id]
			// Diversity scores live in [0,1]; scale to the 0-100 overall
			// score range before blending.
			keys[id] = (1-opts.DiversityWeight)*results[i].OverallScore + opts.DiversityWeight*diversity[id]*100
		}
	} else {
		for i := range results {
			keys[results[i].CandidateID] = results[i].OverallScore
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := &results[i], &results[j]
		ka, kb := keys[a.CandidateID], keys[b.CandidateID]
		if math.Abs(ka-kb) > opts.TieEpsilon {
			return ka > kb
		}
		if a.ComponentScores.Experience != b.ComponentScores.Experience {
			return a.ComponentScores.Experience > b.ComponentScores.Experience
		}
		if a.ComponentScores.Education != b.ComponentScores.Education {
			return a.ComponentScores.Education > b.ComponentScores.Education
		}
		pa, pb := profiles[a.CandidateID], profiles[b.CandidateID]
		if pa != nil && pb != nil && !pa.SubmittedAt.Equal(pb.SubmittedAt) {
			return pa.SubmittedAt.After(pb.SubmittedAt)
		}
		return a.CandidateID < b.CandidateID
	})

	for i := range results {
		results[i].Rank = i + 1
		results[i].RankingExplanation = explainRank(&results[i], len(results))
	}
	return results
}

// explainRank describes why a candidate landed at its rank.
func explainRank(result *types.MatchResult, total int) string {
	var position string
	switch {
	case result.Rank == 1:
		position = fmt.Sprintf("Ranked #1 due to highest overall score among %d candidates", total)
	case result.Rank <= 3:
		position = fmt.Sprintf("Top %d of %d candidates", result.Rank, total)
	case float64(result.Rank) <= float64(total)*0.25:
		position = fmt.Sprintf("Top 25%% (ranked %d of %d)", result.Rank, total)
	default:
		position = fmt.Sprintf("Ranked %d of %d", result.Rank, total)
	}

	var quality string
	switch {
	case result.OverallScore >= 80:
		quality = "with excellent match score"
	case result.OverallScore >= 60:
		quality = "with good match score"
	default:
		quality = "with moderate match score"
	}

	explanation := position + " " + quality
	if result.ComponentScores.Skills >= 0.8 {
		explanation += ". Strong skills match"
	}
	if result.ComponentScores.Experience >= 0.8 {
		explanation += ". Strong experience match"
	}
	return explanation + "."
}
