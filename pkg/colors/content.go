// tokenctl/pkg/colors/content.go

package colors

// ContentColor generates an accessible foreground/content color for a given background
// This implements WCAG AA compliance (4.5:1 minimum contrast ratio for normal text)
//
// The algorithm:
// 1. Try white - most backgrounds work well with white text
// 2. Try black - for light backgrounds
// 3. If neither works (rare edge case), generate an optimal color by adjusting lightness
func ContentColor(background Color) Color {
	white := White()
	black := Black()

	// Check white first (common case for brand colors)
	if ContrastRatio(background, white) >= WCAGAANormal {
		return white
	}

	// Check black
	if ContrastRatio(background, black) >= WCAGAANormal {
		return black
	}

	// Edge case: neither pure white nor black provides sufficient contrast
	// This can happen with mid-tone colors around 50% luminance
	// Generate a color with adjusted lightness that maintains some relationship to the background

	l, c, h := background.OkLch()

	// Determine direction: go opposite of background lightness
	var targetL float64
	if l > 0.5 {
		// Dark content for light backgrounds
		// Reduce chroma to ensure readability
		targetL = 0.15
	} else {
		// Light content for dark backgrounds
		targetL = 0.95
	}

	// Reduce chroma significantly for content colors to ensure readability
	// Content colors should be more neutral than their backgrounds
	contentChroma := c * 0.15

	contentColor := FromOkLch(targetL, contentChroma, h)

	// Verify contrast and adjust if needed
	if ContrastRatio(background, contentColor) < WCAGAANormal {
		// Fall back to pure black or white, whichever is closer to our target
		if targetL > 0.5 {
			return white
		}
		return black
	}

	return contentColor.Clamped()
}
