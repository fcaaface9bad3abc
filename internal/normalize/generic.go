package normalize

// GenericAdapter is the fallback for unrecognized payloads. It treats the
// payload itself as a seller object, so the output is always a well-formed
// record even when every upstream field is missing.
type GenericAdapter struct{}

// NewGenericAdapter creates a new generic adapter
func NewGenericAdapter() *GenericAdapter {
	return &GenericAdapter{}
}

// Name returns the adapter name
func (a *GenericAdapter) Name() string {
	return "generic"
}

// CanHandle accepts anything; the generic adapter is the fallback
func (a *GenericAdapter) CanHandle(payload map[string]any) bool {
	return true
}

// Normalize maps the payload to a single defaulted record
func (a *GenericAdapter) Normalize(payload map[string]any) ([]Result, error) {
	return []Result{{
		Seller:  extractSeller(payload),
		Scoring: extractScoring(payload),
	}}, nil
}
