package border

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// NormalizeHex canonicalises a raw colour input into lower-case "#rrggbb",
// or "#rrggbbaa" when alpha is allowed and an alpha byte was supplied.
func NormalizeHex(raw string, alpha bool) (string, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	value = strings.TrimPrefix(value, "#")
	if strings.Trim(value, "0123456789abcdef") != "" {
		return "", false
	}

	var suffix string
	switch len(value) {
	case 3, 6:
	case 8:
		if !alpha {
			return "", false
		}
		suffix = value[6:]
		value = value[:6]
	default:
		return "", false
	}

	c, err := colorful.Hex("#" + value)
	if err != nil {
		return "", false
	}
	return c.Hex() + suffix, true
}

// alphaInput reports whether a colour input carries an alpha channel.
func alphaInput(id ElementID) bool {
	return id == GradientStartInput || id == GradientEndInput
}
