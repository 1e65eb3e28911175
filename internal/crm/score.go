package crm

// Tier buckets a lead score.
type Tier int

const (
	TierCold Tier = iota
	TierWarm
	TierHot
)

const (
	hotThreshold  = 80
	warmThreshold = 50
)

// String returns the tier label.
func (t Tier) String() string {
	switch t {
	case TierHot:
		return "Hot"
	case TierWarm:
		return "Warm"
	case TierCold:
		return "Cold"
	default:
		return "Unknown"
	}
}

// TierOf classifies a lead score: 80 and above is hot, 50 and above warm.
func TierOf(score int) Tier {
	switch {
	case score >= hotThreshold:
		return TierHot
	case score >= warmThreshold:
		return TierWarm
	default:
		return TierCold
	}
}

// Tier returns the score tier of the lead.
func (l Lead) Tier() Tier {
	return TierOf(l.Score)
}

// ScoreDistribution counts leads per tier.
type ScoreDistribution struct {
	Hot  int `json:"hot"`
	Warm int `json:"warm"`
	Cold int `json:"cold"`
}

// Total returns the number of counted leads.
func (d ScoreDistribution) Total() int {
	return d.Hot + d.Warm + d.Cold
}

// Distribution counts leads per score tier.
func Distribution(leads []Lead) ScoreDistribution {
	var d ScoreDistribution
	for _, l := range leads {
		switch l.Tier() {
		case TierHot:
			d.Hot++
		case TierWarm:
			d.Warm++
		case TierCold:
			d.Cold++
		}
	}
	return d
}
