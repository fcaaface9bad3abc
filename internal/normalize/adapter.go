// Package normalize maps the heterogeneous backend response shapes into the
// canonical SellerRecord view. Each known shape (profile-URL lookup,
// name/platform search, seller-by-id) has its own adapter; a generic
// adapter is the fallback so output is always well-formed.
package normalize

import (
	"github.com/sellerpulse/pulse/internal/clean"
	"github.com/sellerpulse/pulse/internal/model"
	"github.com/sellerpulse/pulse/internal/platform"
)

// Result pairs a normalized record with its optional scoring breakdown
type Result struct {
	Seller  model.SellerRecord
	Scoring *model.ScoringResult
}

// Adapter defines the interface for shape-specific normalizers
type Adapter interface {
	// Name returns the adapter name
	Name() string

	// CanHandle checks if this adapter recognizes the payload shape
	CanHandle(payload map[string]any) bool

	// Normalize maps the payload into canonical records
	Normalize(payload map[string]any) ([]Result, error)
}

// Registry dispatches payloads to shape adapters
type Registry struct {
	adapters []Adapter
	generic  Adapter
}

// NewRegistry creates a registry with the built-in adapters
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(NewProfileLookupAdapter())
	r.Register(NewSearchAdapter())
	r.Register(NewSellerAdapter())
	r.generic = NewGenericAdapter()
	return r
}

// Register registers an additional adapter
func (r *Registry) Register(adapter Adapter) {
	r.adapters = append(r.adapters, adapter)
}

// Find returns the first adapter recognizing the payload, falling back to
// the generic adapter
func (r *Registry) Find(payload map[string]any) Adapter {
	for _, adapter := range r.adapters {
		if adapter.CanHandle(payload) {
			return adapter
		}
	}
	return r.generic
}

// Normalize cleans a raw decoded response and maps it to canonical records.
// nil input yields no records.
func (r *Registry) Normalize(raw any) ([]Result, error) {
	if raw == nil {
		return nil, nil
	}

	payload := unwrap(clean.Value(raw))
	if payload == nil {
		return nil, nil
	}

	return r.Find(payload).Normalize(payload)
}

// NormalizeOne is Normalize for callers expecting a single record. Extra
// records are dropped, not merged.
func (r *Registry) NormalizeOne(raw any) (*Result, error) {
	results, err := r.Normalize(raw)
	if err != nil || len(results) == 0 {
		return nil, err
	}
	return &results[0], nil
}

// unwrap strips the {success, data} envelope and boxes bare arrays so every
// adapter sees a map
func unwrap(v any) map[string]any {
	switch val := v.(type) {
	case map[string]any:
		if data, ok := val["data"]; ok {
			if inner := unwrap(data); inner != nil {
				return inner
			}
		}
		return val
	case []any:
		return map[string]any{"results": val}
	default:
		return nil
	}
}

// extractSeller builds a canonical record from a seller-shaped object.
// Field precedence follows the documented fallback chains; the first
// non-nil candidate wins.
func extractSeller(m map[string]any) model.SellerRecord {
	profile := object(m, "profileData")
	scoring := object(m, "scoringResult")
	stats := object(m, "stats")

	rec := model.SellerRecord{
		ID:       firstStr(str(m, "id", "sellerId", "_id"), str(profile, "id", "sellerId")),
		Name:     firstStr(str(profile, "name"), str(m, "name", "sellerName")),
		Picture:  firstStr(str(profile, "picture", "avatar"), str(m, "picture", "avatar")),
		Location: firstStr(str(profile, "location"), str(m, "location")),
		Bio:      firstStr(str(profile, "bio", "description"), str(m, "bio", "description")),
	}

	// pulseScore: scoringResult wins over any pre-computed top-level value
	if n, ok := num(scoring, "pulseScore"); ok {
		rec.PulseScore = model.ClampScore(int(n))
	} else {
		rec.PulseScore = model.ClampScore(intval(m, "pulseScore"))
	}

	// confidenceLevel: same precedence as pulseScore
	conf := firstStr(str(scoring, "confidenceLevel"), str(m, "confidenceLevel"))
	rec.ConfidenceLevel = model.ParseConfidence(conf)

	verif := firstStr(str(m, "verificationStatus"), str(profile, "verificationStatus"))
	rec.VerificationStatus = model.ParseVerification(verif)

	rec.ProfileURL = firstStr(str(m, "profileUrl", "url"), str(profile, "profileUrl"))

	// platform: explicit field first, then derived from the profile URL host
	rec.Platform = firstStr(str(m, "platform"), str(profile, "platform"))
	if rec.Platform == "" && rec.ProfileURL != "" {
		rec.Platform = platform.FromURL(rec.ProfileURL)
	}

	if n, ok := num(m, "avgRating"); ok {
		rec.AvgRating = n
	} else if n, ok := num(stats, "avgRating"); ok {
		rec.AvgRating = n
	}
	rec.TotalReviews = firstInt(intval(m, "totalReviews"), intval(stats, "totalReviews"))
	rec.AccountAgeMon = firstInt(intval(m, "accountAge", "accountAgeMonths"), intval(stats, "accountAge"))

	rec.ListingCount = firstInt(intval(m, "listingCount"), intval(stats, "listingCount"))
	rec.FlagCount = firstInt(intval(m, "flagCount"), intval(stats, "flagCount"))
	rec.EndorsementCount = firstInt(intval(m, "endorsementCount"), intval(stats, "endorsementCount"))

	rec.FirstSeen = timestamp(m, "firstSeen", "createdAt")
	rec.LastSeen = timestamp(m, "lastSeen", "updatedAt")
	rec.LastScored = timestamp(m, "lastScored", "scoredAt")

	rec.IsClaimed = boolean(m, "isClaimed")
	rec.ClaimedAt = timestamp(m, "claimedAt")
	rec.UserID = str(m, "userId", "claimedBy")

	return rec
}

// extractScoring builds the trust breakdown from a scoringResult object,
// or nil when the payload has none
func extractScoring(m map[string]any) *model.ScoringResult {
	scoring := object(m, "scoringResult")
	if scoring == nil {
		return nil
	}

	result := &model.ScoringResult{
		PulseScore:      model.ClampScore(intval(scoring, "pulseScore")),
		ConfidenceLevel: model.ParseConfidence(str(scoring, "confidenceLevel")),
	}

	if indicators := object(scoring, "trustIndicators"); indicators != nil {
		result.TrustIndicators = make(map[string]string, len(indicators))
		for k, v := range indicators {
			if s, ok := v.(string); ok {
				result.TrustIndicators[k] = s
			}
		}
	}

	if factors := object(scoring, "scoringFactors"); factors != nil {
		result.ScoringFactors = make(map[string]float64, len(factors))
		for k, v := range factors {
			if n, ok := v.(float64); ok {
				result.ScoringFactors[k] = n
			}
		}
	}

	for _, item := range array(scoring, "recommendations") {
		rm, ok := item.(map[string]any)
		if !ok {
			continue
		}
		rec := model.Recommendation{
			Type:    model.RecommendationType(str(rm, "type")),
			Message: str(rm, "message"),
			Action:  str(rm, "action"),
		}
		switch rec.Type {
		case model.RecommendationPositive, model.RecommendationWarning, model.RecommendationNegative:
		default:
			rec.Type = model.RecommendationWarning
		}
		result.Recommendations = append(result.Recommendations, rec)
	}

	return result
}

func firstStr(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

func firstInt(candidates ...int) int {
	for _, c := range candidates {
		if c != 0 {
			return c
		}
	}
	return 0
}
