package model

import "time"

// SellerRecord is the canonical view of a marketplace seller after
// normalization. Every backend response shape (profile lookup, search,
// seller-by-id) is mapped into this one struct.
type SellerRecord struct {
	ID       string `json:"id"`       // Platform-scoped seller ID
	Platform string `json:"platform"` // Marketplace slug (e.g., "jiji")

	// Profile (text-cleaned)
	Name       string `json:"name"`
	Picture    string `json:"picture,omitempty"`
	Location   string `json:"location,omitempty"`
	Bio        string `json:"bio,omitempty"`
	ProfileURL string `json:"profile_url,omitempty"`

	// Trust fields
	PulseScore         int                `json:"pulse_score"` // 0-100
	ConfidenceLevel    ConfidenceLevel    `json:"confidence_level"`
	VerificationStatus VerificationStatus `json:"verification_status"`

	// Marketplace stats
	AvgRating     float64 `json:"avg_rating"`
	TotalReviews  int     `json:"total_reviews"`
	AccountAgeMon int     `json:"account_age_months"`

	// Activity counters
	ListingCount     int `json:"listing_count"`
	FlagCount        int `json:"flag_count"`
	EndorsementCount int `json:"endorsement_count"`

	// Timestamps
	FirstSeen  time.Time `json:"first_seen,omitempty"`
	LastSeen   time.Time `json:"last_seen,omitempty"`
	LastScored time.Time `json:"last_scored,omitempty"`

	// Claim state
	IsClaimed bool      `json:"is_claimed"`
	ClaimedAt time.Time `json:"claimed_at,omitempty"`
	UserID    string    `json:"user_id,omitempty"` // Linked account, empty if unclaimed
}

// Key returns the identity used for deduplicating listing results.
func (s SellerRecord) Key() string {
	return s.Platform + ":" + s.ID
}

// ConfidenceLevel is the backend-assigned certainty behind a pulse score
type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)

// ParseConfidence maps arbitrary backend input to a known confidence level,
// defaulting to the least-trusting value
func ParseConfidence(s string) ConfidenceLevel {
	switch ConfidenceLevel(s) {
	case ConfidenceMedium:
		return ConfidenceMedium
	case ConfidenceHigh:
		return ConfidenceHigh
	default:
		return ConfidenceLow
	}
}

// VerificationStatus describes how far a seller has progressed through
// profile verification
type VerificationStatus string

const (
	VerificationNone VerificationStatus = "unverified"
	VerificationBase VerificationStatus = "verified"
	VerificationID   VerificationStatus = "id-verified"
)

// ParseVerification maps arbitrary backend input to a known verification
// status, defaulting to unverified
func ParseVerification(s string) VerificationStatus {
	switch VerificationStatus(s) {
	case VerificationBase:
		return VerificationBase
	case VerificationID:
		return VerificationID
	default:
		return VerificationNone
	}
}

// ClampScore bounds a pulse score to the valid 0-100 range
func ClampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// ScoringResult is the derived trust breakdown attached to at most one
// SellerRecord. The most recent computation wins; no history is kept.
type ScoringResult struct {
	PulseScore      int                `json:"pulse_score"`
	ConfidenceLevel ConfidenceLevel    `json:"confidence_level"`
	TrustIndicators map[string]string  `json:"trust_indicators,omitempty"` // factor -> percentage string
	ScoringFactors  map[string]float64 `json:"scoring_factors,omitempty"`  // factor -> numeric score
	Recommendations []Recommendation   `json:"recommendations,omitempty"`
}

// Recommendation is a single advisory line from the scoring backend
type Recommendation struct {
	Type    RecommendationType `json:"type"`
	Message string             `json:"message"`
	Action  string             `json:"action,omitempty"`
}

// RecommendationType classifies a recommendation
type RecommendationType string

const (
	RecommendationPositive RecommendationType = "positive"
	RecommendationWarning  RecommendationType = "warning"
	RecommendationNegative RecommendationType = "negative"
)
