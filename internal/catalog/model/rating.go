package model

import "fmt"

// ReviewSentiment is Steam's coarse review verdict, ordered worst to best.
type ReviewSentiment int

const (
	SentimentUndefined ReviewSentiment = iota
	SentimentOverwhelmingNegative
	SentimentVeryNegative
	SentimentNegative
	SentimentMostlyNegative
	SentimentMixed
	SentimentMostlyPositive
	SentimentPositive
	SentimentVeryPositive
	SentimentOverwhelmingPositive
)

// SentimentFromScore maps Steam's numeric review_score (0-9) to a
// sentiment, defaulting to undefined for anything out of range.
func SentimentFromScore(score int) ReviewSentiment {
	if score < int(SentimentUndefined) || score > int(SentimentOverwhelmingPositive) {
		return SentimentUndefined
	}
	return ReviewSentiment(score)
}

// Score returns the numeric value Steam uses for this sentiment.
func (s ReviewSentiment) Score() int { return int(s) }

var sentimentNames = [...]string{
	"Undefined",
	"Overwhelmingly Negative",
	"Very Negative",
	"Negative",
	"Mostly Negative",
	"Mixed",
	"Mostly Positive",
	"Positive",
	"Very Positive",
	"Overwhelmingly Positive",
}

func (s ReviewSentiment) String() string {
	if s < SentimentUndefined || s > SentimentOverwhelmingPositive {
		return sentimentNames[SentimentUndefined]
	}
	return sentimentNames[s]
}

// SteamRating holds Steam's raw review counts plus the review verdict.
type SteamRating struct {
	Positive  int             `json:"positive"`
	Negative  int             `json:"negative"`
	Sentiment ReviewSentiment `json:"sentiment"`
}

// NewSteamRating validates the review counts.
func NewSteamRating(positive, negative int, sentiment ReviewSentiment) (SteamRating, error) {
	if positive < 0 {
		return SteamRating{}, fmt.Errorf("number of positive reviews must be >= 0, got %d", positive)
	}
	if negative < 0 {
		return SteamRating{}, fmt.Errorf("number of negative reviews must be >= 0, got %d", negative)
	}
	return SteamRating{Positive: positive, Negative: negative, Sentiment: sentiment}, nil
}

// Rating returns the positive review ratio as an integer percentage.
// Zero negatives means the counts are not trustworthy yet, so 0.
func (r SteamRating) Rating() int {
	if r.Negative == 0 {
		return 0
	}
	return r.Positive * 100 / (r.Positive + r.Negative)
}

// AggregatedRatings combines the per-source ratings into one score.
// Currently Steam is the only contributing source.
type AggregatedRatings struct {
	Steam *SteamRating `json:"steam,omitempty"`
}

// Rating averages the available source scores, 0-100. Zero when no
// source has rating data.
func (a AggregatedRatings) Rating() int {
	var sum, n int
	if a.Steam != nil {
		sum += a.Steam.Rating()
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / n
}
