package normalize

// ProfileLookupAdapter handles the profile-URL lookup and score-by-url
// response shape: profile fields nested under profileData, with the trust
// breakdown under scoringResult.
type ProfileLookupAdapter struct{}

// NewProfileLookupAdapter creates a new profile lookup adapter
func NewProfileLookupAdapter() *ProfileLookupAdapter {
	return &ProfileLookupAdapter{}
}

// Name returns the adapter name
func (a *ProfileLookupAdapter) Name() string {
	return "profile-lookup"
}

// CanHandle recognizes payloads with a nested profileData object
func (a *ProfileLookupAdapter) CanHandle(payload map[string]any) bool {
	return object(payload, "profileData") != nil
}

// Normalize maps the lookup payload to one canonical record
func (a *ProfileLookupAdapter) Normalize(payload map[string]any) ([]Result, error) {
	return []Result{{
		Seller:  extractSeller(payload),
		Scoring: extractScoring(payload),
	}}, nil
}
