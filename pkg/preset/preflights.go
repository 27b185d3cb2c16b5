package preset

import "github.com/dmoose/atomicss/pkg/engine"

// resetCSS is a minimal box-sizing/margin reset, the same shape as
// tokenctl's pkg/generators/css.go generateReset — a handful of
// universal-selector rules emitted once per sheet regardless of which
// utilities matched, ahead of every generated layer.
const resetCSS = `*, *::before, *::after {
  box-sizing: border-box;
  margin: 0;
  padding: 0;
}
html {
  -webkit-text-size-adjust: 100%;
  line-height: 1.5;
}
body {
  min-height: 100vh;
}
`

// DefaultPreflights wraps resetCSS as the preset's one Preflight block,
// emitted in the "reset" layer, which Default()'s layer weights sort
// ahead of the generated utilities; a user config that sets its own
// weight for "reset" decides that order instead.
func DefaultPreflights() []engine.Preflight {
	return []engine.Preflight{
		{
			Layer: "reset",
			GetCSS: func(_ *engine.RuleContext) (string, error) {
				return resetCSS, nil
			},
		},
	}
}
