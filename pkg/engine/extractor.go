package engine

import "context"

// ExtractorInput is what an Extractor receives: the original source and
// the code it should actually scan (the two are the same value here —
// the engine has no source-level preprocess stage, only the per-token
// preprocess chain applied later in ParseToken), plus an opaque file id
// used only for diagnostics.
type ExtractorInput struct {
	Original string
	Code     string
	ID       string
}

// Extractor pulls a set of candidate raw tokens out of a source file.
// Extract may block (it can shell out to a real parser, for instance),
// hence the context for cancellation.
type Extractor struct {
	Name    string
	Extract func(ctx context.Context, input ExtractorInput) (map[string]struct{}, error)
}

// RunExtractors runs every configured extractor against code and unions
// their candidate sets. Union makes repeated extraction idempotent:
// running the same extractors over the same code twice and merging both
// results again yields exactly the first result.
func RunExtractors(ctx context.Context, cfg *ResolvedConfig, code, id string) (map[string]struct{}, error) {
	out := make(map[string]struct{})
	input := ExtractorInput{Original: code, Code: code, ID: id}
	for _, ex := range cfg.Extractors {
		tokens, err := ex.Extract(ctx, input)
		if err != nil {
			return nil, err
		}
		for t := range tokens {
			out[t] = struct{}{}
		}
	}
	return out, nil
}
