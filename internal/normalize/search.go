package normalize

// SearchAdapter handles the name/platform search response shape: a results
// array of flat seller objects, each possibly carrying its own
// scoringResult.
type SearchAdapter struct{}

// NewSearchAdapter creates a new search adapter
func NewSearchAdapter() *SearchAdapter {
	return &SearchAdapter{}
}

// Name returns the adapter name
func (a *SearchAdapter) Name() string {
	return "search"
}

// CanHandle recognizes payloads carrying a results or sellers array
func (a *SearchAdapter) CanHandle(payload map[string]any) bool {
	return array(payload, "results") != nil || array(payload, "sellers") != nil
}

// Normalize maps every array element to a canonical record, skipping
// entries that are not objects
func (a *SearchAdapter) Normalize(payload map[string]any) ([]Result, error) {
	items := array(payload, "results")
	if items == nil {
		items = array(payload, "sellers")
	}

	results := make([]Result, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		results = append(results, Result{
			Seller:  extractSeller(m),
			Scoring: extractScoring(m),
		})
	}
	return results, nil
}
