package types

import "strings"

// DegreeLevel represents the highest academic degree a candidate holds or a
// job requires. Levels form a fixed ordinal scale used for gating and scoring.
type DegreeLevel string

// Degree levels ordered from lowest to highest.
const (
	DegreeNone      DegreeLevel = ""
	DegreeAssociate DegreeLevel = "associate"
	DegreeBachelor  DegreeLevel = "bachelor"
	DegreeMaster    DegreeLevel = "master"
	DegreePhD       DegreeLevel = "phd"
)

// degreeRank maps degree levels to numeric ranks for comparison
var degreeRank = map[DegreeLevel]int{
	DegreeNone:      0,
	DegreeAssociate: 1,
	DegreeBachelor:  2,
	DegreeMaster:    3,
	DegreePhD:       4,
}

// Rank returns the ordinal rank of the degree level. Unknown values rank as
// DegreeNone so malformed input never gates a candidate out by accident.
func (d DegreeLevel) Rank() int {
	return degreeRank[d.normalized()]
}

// Meets reports whether the degree meets or exceeds the required level.
func (d DegreeLevel) Meets(required DegreeLevel) bool {
	return d.Rank() >= required.Rank()
}

// normalized maps common variants onto the canonical degree levels.
func (d DegreeLevel) normalized() DegreeLevel {
	switch strings.ToLower(strings.TrimSpace(string(d))) {
	case "associate", "associates", "diploma":
		return DegreeAssociate
	case "bachelor", "bachelors", "bs", "ba":
		return DegreeBachelor
	case "master", "masters", "ms", "ma", "mba":
		return DegreeMaster
	case "phd", "doctorate", "doctoral":
		return DegreePhD
	default:
		return DegreeNone
	}
}
