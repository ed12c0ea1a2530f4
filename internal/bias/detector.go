// Package bias analyzes job text and ranking distributions for patterns that
// indicate gender, age, or institution bias. It only reports: scores and
// ranks are never altered, and any failure degrades to an empty report.
package bias

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/candidate-matcher/internal/types"
)

// Detector runs word-list and distribution analysis.
type Detector struct {
	logger *zap.Logger
}

// NewDetector creates a Detector. A nil logger disables logging.
func NewDetector(logger *zap.Logger) *Detector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detector{logger: logger}
}

// Analyze inspects the job text for biased language and the ranked results
// for institution concentration. It never returns an error: an internal
// failure yields an empty report and a log warning so a bias-analysis problem
// cannot fail the surrounding match.
func (d *Detector) Analyze(job *types.JobRequirements, results []types.MatchResult, profiles map[string]*types.CandidateProfile) (report *types.BiasReport) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Warn("bias detection failed, returning empty report", zap.Any("panic", r))
			report = &types.BiasReport{Recommendations: []string{"Bias analysis unavailable for this run."}}
		}
	}()

	text := strings.ToLower(job.FullText())
	report = &types.BiasReport{
		GenderBias:      detectGenderBias(text),
		AgeBias:         detectAgeBias(text),
		InstitutionBias: detectInstitutionBias(text, results, profiles),
	}
	report.OverallBiasScore = math.Max(report.GenderBias.Score,
		math.Max(report.AgeBias.Score, report.InstitutionBias.Score))
	report.Recommendations = recommendations(report)
	return report
}

// detectGenderBias counts gender-coded words. The score combines the
// imbalance between masculine and feminine word counts with the overall
// volume of coded language.
func detectGenderBias(text string) types.BiasDimension {
	var matches []string
	masculine, feminine := 0, 0
	for _, w := range masculineCodedWords {
		if strings.Contains(text, w) {
			masculine++
			matches = append(matches, w)
		}
	}
	for _, w := range feminineCodedWords {
		if strings.Contains(text, w) {
			feminine++
			matches = append(matches, w)
		}
	}

	total := masculine + feminine
	if total == 0 {
		return types.BiasDimension{}
	}
	imbalance := math.Abs(float64(masculine-feminine)) / float64(total)
	score := math.Min(imbalance*0.5+float64(total)/20.0*0.5, 1.0)
	return types.BiasDimension{Detected: true, Score: score, Matches: matches}
}

func detectAgeBias(text string) types.BiasDimension {
	var matches []string
	for _, p := range agePatterns {
		matches = append(matches, p.FindAllString(text, -1)...)
	}
	if len(matches) == 0 {
		return types.BiasDimension{}
	}
	return types.BiasDimension{
		Detected: true,
		Score:    math.Min(float64(len(matches))/5.0, 1.0),
		Matches:  matches,
	}
}

// detectInstitutionBias combines prestige keywords in the job text with the
// institution concentration of the ranked list: a single institution
// dominating the top of the ranking is itself a bias signal.
func detectInstitutionBias(text string, results []types.MatchResult, profiles map[string]*types.CandidateProfile) types.BiasDimension {
	var matches []string
	for _, kw := range institutionPrestigeKeywords {
		if strings.Contains(text, kw) {
			matches = append(matches, kw)
		}
	}
	keywordScore := math.Min(float64(len(matches))/3.0, 1.0)

	concentration := 0.0
	if len(results) >= 3 {
		counts := make(map[string]int)
		known := 0
		for _, r := range results {
			p := profiles[r.CandidateID]
			if p == nil || strings.TrimSpace(p.Institution) == "" {
				continue
			}
			counts[strings.ToLower(strings.TrimSpace(p.Institution))]++
			known++
		}
		if known > 0 {
			top := 0
			topName := ""
			for name, c := range counts {
				if c > top {
					top, topName = c, name
				}
			}
			share := float64(top) / float64(known)
			// More than half of the ranked pool from one institution.
			if share > 0.5 {
				concentration = share
				matches = append(matches, fmt.Sprintf("%.0f%% of ranked candidates from %s", share*100, topName))
			}
		}
	}

	score := math.Max(keywordScore, concentration)
	return types.BiasDimension{Detected: score > 0, Score: score, Matches: matches}
}

// recommendationThreshold is the dimension score above which a remediation
// recommendation is emitted.
const recommendationThreshold = 0.3

func recommendations(report *types.BiasReport) []string {
	var recs []string
	if report.GenderBias.Score > recommendationThreshold {
		recs = append(recs, "Consider more gender-neutral language; balance masculine and feminine descriptors.")
	}
	if report.AgeBias.Score > recommendationThreshold {
		recs = append(recs, "Remove age-coded language; focus on skills and experience rather than age.")
	}
	if report.InstitutionBias.Score > recommendationThreshold {
		recs = append(recs, "Avoid prestige-based institution filtering; focus on competencies rather than where candidates studied.")
	}
	if len(recs) == 0 {
		recs = append(recs, "Job description appears relatively unbiased.")
	}
	return recs
}
