package preset

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/dmoose/atomicss/pkg/engine"
)

// tokenShapeRegex is the minimal shape a candidate raw token must have
// to be worth feeding into the variant/rule matchers at all: letters,
// digits, and the punctuation variants/rules actually use (colon for
// variant prefixes, slash for opacity modifiers, brackets for arbitrary
// values, dot for decimal spacing steps). Filters out stray whitespace
// fragments and HTML/JS noise the regex extractor's broader scan would
// otherwise pick up.
var tokenShapeRegex = regexp.MustCompile(`^[a-zA-Z0-9_:./\[\]%-]+$`)

func isCandidateToken(s string) bool {
	return s != "" && tokenShapeRegex.MatchString(s)
}

func splitClassValue(value string) []string {
	var out []string
	for _, f := range strings.Fields(value) {
		if isCandidateToken(f) {
			out = append(out, f)
		}
	}
	return out
}

// htmlExtractor walks markup with golang.org/x/net/html (the same HTML
// tokenizer dependency several of the example repos in the retrieval
// pack already pull in for markup handling) and collects every "class"
// attribute's whitespace-separated values. Malformed markup degrades
// gracefully: the tokenizer surfaces what it can parse up to the first
// unrecoverable error rather than failing the whole extraction.
func htmlExtractor() engine.Extractor {
	return engine.Extractor{
		Name: "html-class",
		Extract: func(_ context.Context, input engine.ExtractorInput) (map[string]struct{}, error) {
			out := make(map[string]struct{})
			tokenizer := html.NewTokenizer(strings.NewReader(input.Code))
			for {
				tt := tokenizer.Next()
				if tt == html.ErrorToken {
					return out, nil
				}
				if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
					continue
				}
				token := tokenizer.Token()
				for _, attr := range token.Attr {
					if attr.Key != "class" {
						continue
					}
					for _, c := range splitClassValue(attr.Val) {
						out[c] = struct{}{}
					}
				}
			}
		},
	}
}

// classAttrRegex recognizes class/className attributes in non-HTML
// source (JSX, Vue SFC templates, Svelte, Go templ files) where the
// html tokenizer either doesn't apply or would choke on the host
// language's own syntax embedded around the markup.
var classAttrRegex = regexp.MustCompile(`(?:class|className)\s*=\s*(?:"([^"]*)"|'([^']*)'|` + "`([^`]*)`" + `)`)

func regexClassExtractor() engine.Extractor {
	return engine.Extractor{
		Name: "regex-class",
		Extract: func(_ context.Context, input engine.ExtractorInput) (map[string]struct{}, error) {
			out := make(map[string]struct{})
			for _, m := range classAttrRegex.FindAllStringSubmatch(input.Code, -1) {
				value := m[1] + m[2] + m[3]
				for _, c := range splitClassValue(value) {
					out[c] = struct{}{}
				}
			}
			return out, nil
		},
	}
}

// DefaultExtractors runs both extractors over every source file; their
// results union (engine.RunExtractors' contract), so well-formed HTML
// picks up classes via the tokenizer while JSX/templ-style attribute
// syntax still gets scanned by the regex fallback.
func DefaultExtractors() []engine.Extractor {
	return []engine.Extractor{htmlExtractor(), regexClassExtractor()}
}
