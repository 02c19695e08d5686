package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"alembic/internal/alchemy"
)

// Token represents a named, themeable color slot in the output.
// These are the keys users can override in their config.
type Token string

const (
	TokenIngredient     Token = "ingredient"
	TokenEffectDefault  Token = "effect.default"
	TokenEffectPositive Token = "effect.positive"
	TokenEffectNegative Token = "effect.negative"
	TokenEffectNeutral  Token = "effect.neutral"
	TokenMagnitude      Token = "magnitude"
	TokenDuration       Token = "duration"
	TokenKeyword        Token = "keyword"
	TokenHighlight      Token = "highlight"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []Token {
	return []Token{
		TokenIngredient,
		TokenEffectDefault,
		TokenEffectPositive,
		TokenEffectNegative,
		TokenEffectNeutral,
		TokenMagnitude,
		TokenDuration,
		TokenKeyword,
		TokenHighlight,
	}
}

// defaultColors is the built-in palette.
var defaultColors = map[Token]string{
	TokenIngredient:     "#7AA2F7",
	TokenEffectDefault:  "#C0CAF5",
	TokenEffectPositive: "#9ECE6A",
	TokenEffectNegative: "#F7768E",
	TokenEffectNeutral:  "#E0AF68",
	TokenMagnitude:      "#BB9AF7",
	TokenDuration:       "#7DCFFF",
	TokenKeyword:        "#565F89",
	TokenHighlight:      "#FF9E64",
}

// Palette resolves color tokens to lipgloss styles.
type Palette struct {
	styles map[Token]lipgloss.Style
}

// DefaultPalette returns the built-in palette.
func DefaultPalette() Palette {
	p, _ := NewPalette(nil)
	return p
}

// NewPalette builds a palette from the defaults plus per-token hex
// overrides (keyed by token name, as found in the config file).
func NewPalette(overrides map[string]string) (Palette, error) {
	colors := make(map[Token]string, len(defaultColors))
	for token, hex := range defaultColors {
		colors[token] = hex
	}
	for key, value := range overrides {
		token := Token(key)
		if !isValidToken(token) {
			return Palette{}, fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return Palette{}, fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	styles := make(map[Token]lipgloss.Style, len(colors))
	for token, hex := range colors {
		styles[token] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	styles[TokenHighlight] = styles[TokenHighlight].Bold(true)
	return Palette{styles: styles}, nil
}

// Style returns the style for a token. Unknown tokens get a zero
// style.
func (p Palette) Style(token Token) lipgloss.Style {
	return p.styles[token]
}

func isValidToken(token Token) bool {
	for _, t := range AllTokens() {
		if t == token {
			return true
		}
	}
	return false
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}

// Name-substring fallback tables for effects whose imported keyword
// metadata is incomplete.
var (
	negativeNameParts = []string{
		"damage", "drain", "ravage", "weakness", "fear", "frenzy",
		"paralysis", "silence", "burden", "lingering",
	}
	positiveNameParts = []string{
		"restore", "fortify", "resist", "regenerate", "cure",
		"invisibility", "waterbreathing", "feather", "night eye",
	}
)

// EffectToken resolves the color token for an effect. Marker keywords
// win; effects with keywords but no magic-influence marker are
// neutral; anything else is classified by name substring. With color
// output disabled every effect gets the default token.
func (f Format) EffectToken(fx alchemy.Effect) Token {
	if !f.Color {
		return TokenEffectDefault
	}
	if len(fx.Keywords) > 0 {
		if fx.IsNegative() {
			return TokenEffectNegative
		}
		if fx.IsPositive() {
			return TokenEffectPositive
		}
		if !fx.HasKeyword(alchemy.KeywordMagicInfluence) {
			return TokenEffectNeutral
		}
	}
	name := fx.LowerName()
	for _, part := range negativeNameParts {
		if strings.Contains(name, part) {
			return TokenEffectNegative
		}
	}
	for _, part := range positiveNameParts {
		if strings.Contains(name, part) {
			return TokenEffectPositive
		}
	}
	return TokenEffectNeutral
}
