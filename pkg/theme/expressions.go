package theme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmoose/atomicss/pkg/colors"
)

// Supported expression forms, carried over verbatim from tokenctl's
// pkg/tokens/expressions.go: calc(), contrast(), darken(), lighten(),
// scale(). References inside an expression have already been
// interpolated to literal strings by the time evaluate runs.
var (
	calcRegex     = regexp.MustCompile(`^calc\((.+)\)$`)
	contrastRegex = regexp.MustCompile(`^contrast\(\s*([^)]+?)\s*\)$`)
	darkenRegex   = regexp.MustCompile(`^darken\(\s*([^,]+?)\s*,\s*([0-9.]+)%?\s*\)$`)
	lightenRegex  = regexp.MustCompile(`^lighten\(\s*([^,]+?)\s*,\s*([0-9.]+)%?\s*\)$`)
	scaleRegex    = regexp.MustCompile(`^scale\(\s*([^,]+?)\s*,\s*([0-9.]+)\s*\)$`)
)

// IsExpression reports whether value is one of the recognized forms.
func IsExpression(value string) bool {
	v := strings.TrimSpace(value)
	for _, prefix := range []string{"calc(", "contrast(", "darken(", "lighten(", "scale("} {
		if strings.HasPrefix(v, prefix) {
			return true
		}
	}
	return false
}

func evaluate(expr string) (string, error) {
	expr = strings.TrimSpace(expr)

	if m := calcRegex.FindStringSubmatch(expr); m != nil {
		return evaluateArithmetic(m[1])
	}
	if m := contrastRegex.FindStringSubmatch(expr); m != nil {
		return evaluateContrast(m[1])
	}
	if m := darkenRegex.FindStringSubmatch(expr); m != nil {
		amount, _ := strconv.ParseFloat(m[2], 64)
		return evaluateDarken(m[1], amount/100)
	}
	if m := lightenRegex.FindStringSubmatch(expr); m != nil {
		amount, _ := strconv.ParseFloat(m[2], 64)
		return evaluateLighten(m[1], amount/100)
	}
	if m := scaleRegex.FindStringSubmatch(expr); m != nil {
		factor, _ := strconv.ParseFloat(m[2], 64)
		return evaluateScale(m[1], factor)
	}

	// Not an expression form: a plain literal value, returned as-is.
	return expr, nil
}

// evaluateArithmetic evaluates a single binary operation over dimension
// and bare-number operands. It splits once at the last '*', else the
// last '/', else the last '+' or '-', and evaluates the two sides as
// plain operands; the sides are not evaluated recursively, so an
// expression with more than two terms is rejected.
func evaluateArithmetic(expr string) (string, error) {
	expr = strings.TrimSpace(expr)

	if idx := strings.LastIndex(expr, "*"); idx > 0 {
		return evaluateMultiply(strings.TrimSpace(expr[:idx]), strings.TrimSpace(expr[idx+1:]))
	}
	if idx := strings.LastIndex(expr, "/"); idx > 0 {
		return evaluateDivide(strings.TrimSpace(expr[:idx]), strings.TrimSpace(expr[idx+1:]))
	}
	for i := len(expr) - 1; i > 0; i-- {
		if expr[i] == '+' {
			return evaluateAdd(strings.TrimSpace(expr[:i]), strings.TrimSpace(expr[i+1:]))
		}
		if expr[i] == '-' && expr[i-1] != '*' && expr[i-1] != '/' && expr[i-1] != '(' {
			return evaluateSubtract(strings.TrimSpace(expr[:i]), strings.TrimSpace(expr[i+1:]))
		}
	}
	return expr, nil
}

func evaluateMultiply(left, right string) (string, error) {
	if leftDim, err := ParseDimension(left); err == nil {
		if rightNum, err := strconv.ParseFloat(right, 64); err == nil {
			result := leftDim.Multiply(rightNum)
			result.Value = roundFloat(result.Value, 4)
			return result.String(), nil
		}
	}
	if leftNum, err := strconv.ParseFloat(left, 64); err == nil {
		if rightDim, err := ParseDimension(right); err == nil {
			result := rightDim.Multiply(leftNum)
			result.Value = roundFloat(result.Value, 4)
			return result.String(), nil
		}
	}
	return "", fmt.Errorf("cannot multiply: %s * %s", left, right)
}

func evaluateDivide(left, right string) (string, error) {
	leftDim, err := ParseDimension(left)
	if err != nil {
		return "", fmt.Errorf("cannot divide: %s / %s", left, right)
	}
	rightNum, err := strconv.ParseFloat(right, 64)
	if err != nil {
		return "", fmt.Errorf("cannot divide: %s / %s", left, right)
	}
	result, err := leftDim.Divide(rightNum)
	if err != nil {
		return "", err
	}
	result.Value = roundFloat(result.Value, 4)
	return result.String(), nil
}

func evaluateAdd(left, right string) (string, error) {
	leftDim, lerr := ParseDimension(left)
	rightDim, rerr := ParseDimension(right)
	if lerr != nil || rerr != nil {
		return "", fmt.Errorf("cannot add: %s + %s", left, right)
	}
	result, err := leftDim.Add(rightDim)
	if err != nil {
		return "", err
	}
	return result.String(), nil
}

func evaluateSubtract(left, right string) (string, error) {
	leftDim, lerr := ParseDimension(left)
	rightDim, rerr := ParseDimension(right)
	if lerr != nil || rerr != nil {
		return "", fmt.Errorf("cannot subtract: %s - %s", left, right)
	}
	result, err := leftDim.Subtract(rightDim)
	if err != nil {
		return "", err
	}
	return result.String(), nil
}

func evaluateContrast(colorLiteral string) (string, error) {
	bg, err := colors.Parse(colorLiteral)
	if err != nil {
		return "", fmt.Errorf("contrast: invalid color %s: %w", colorLiteral, err)
	}
	content := colors.ContentColor(bg)
	if bg.OriginalFormat() == colors.FormatOKLCH {
		return content.ToOKLCH(), nil
	}
	return content.Hex(), nil
}

func evaluateDarken(colorLiteral string, amount float64) (string, error) {
	c, err := colors.Parse(colorLiteral)
	if err != nil {
		return "", fmt.Errorf("darken: invalid color %s: %w", colorLiteral, err)
	}
	l, ch, h := c.OkLch()
	newL := l * (1 - amount)
	if newL < 0 {
		newL = 0
	}
	result := colors.FromOkLch(newL, ch, h).Clamped()
	if c.OriginalFormat() == colors.FormatOKLCH {
		return result.ToOKLCH(), nil
	}
	return result.Hex(), nil
}

func evaluateLighten(colorLiteral string, amount float64) (string, error) {
	c, err := colors.Parse(colorLiteral)
	if err != nil {
		return "", fmt.Errorf("lighten: invalid color %s: %w", colorLiteral, err)
	}
	l, ch, h := c.OkLch()
	newL := l + (1-l)*amount
	if newL > 1 {
		newL = 1
	}
	result := colors.FromOkLch(newL, ch, h).Clamped()
	if c.OriginalFormat() == colors.FormatOKLCH {
		return result.ToOKLCH(), nil
	}
	return result.Hex(), nil
}

func evaluateScale(dimLiteral string, factor float64) (string, error) {
	dim, err := ParseDimension(dimLiteral)
	if err != nil {
		return "", fmt.Errorf("scale: invalid dimension %s: %w", dimLiteral, err)
	}
	result := dim.Multiply(factor)
	result.Value = roundFloat(result.Value, 4)
	return result.String(), nil
}
