package normalize

// SellerAdapter handles the seller-by-id response shape: the seller object
// nested under a seller key, with the trust breakdown as a sibling.
type SellerAdapter struct{}

// NewSellerAdapter creates a new seller-by-id adapter
func NewSellerAdapter() *SellerAdapter {
	return &SellerAdapter{}
}

// Name returns the adapter name
func (a *SellerAdapter) Name() string {
	return "seller-by-id"
}

// CanHandle recognizes payloads with a nested seller object
func (a *SellerAdapter) CanHandle(payload map[string]any) bool {
	return object(payload, "seller") != nil
}

// Normalize maps the payload to one canonical record. The sibling
// scoringResult takes precedence over one nested inside the seller object,
// matching the field fallback discipline.
func (a *SellerAdapter) Normalize(payload map[string]any) ([]Result, error) {
	seller := object(payload, "seller")

	// Graft the sibling scoringResult onto the seller object when the
	// seller itself has none
	if object(seller, "scoringResult") == nil {
		if scoring := object(payload, "scoringResult"); scoring != nil {
			grafted := make(map[string]any, len(seller)+1)
			for k, v := range seller {
				grafted[k] = v
			}
			grafted["scoringResult"] = scoring
			seller = grafted
		}
	}

	return []Result{{
		Seller:  extractSeller(seller),
		Scoring: extractScoring(seller),
	}}, nil
}
