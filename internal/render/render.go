package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"alembic/internal/alchemy"
)

// suffixColumn is the column magnitude values are right-aligned to.
// Durations align a further 10 columns past the magnitude.
const suffixColumn = 25

// Renderer writes alchemy records to a text sink under one Format
// configuration, highlighting occurrences of the given search terms.
// Renderers borrow the entities they format and never mutate them or
// the configuration.
type Renderer struct {
	format Format
	terms  []string
}

// New returns a renderer for the given format and search terms. Terms
// are tried in order when highlighting.
func New(format Format, terms ...string) *Renderer {
	return &Renderer{format: format, terms: terms}
}

func (r *Renderer) indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(" ", r.format.Indent*depth)
}

func (r *Renderer) styled(token Token, s string) string {
	if !r.format.Color {
		return s
	}
	return r.format.Colors.Style(token).Render(s)
}

// splitStyled renders name with the matched search term highlighted
// and the rest in the token's color.
func (r *Renderer) splitStyled(name string, token Token) string {
	pre, hit, post := r.format.SplitName(name, r.terms)
	if hit == "" {
		return r.styled(token, name)
	}
	return r.styled(token, pre) + r.styled(TokenHighlight, hit) + r.styled(token, post)
}

// pad returns the spaces needed to right-align a value whose line
// already used the given number of columns.
func pad(used int) string {
	n := suffixColumn - used
	if n < 2 {
		n = 2
	}
	return strings.Repeat(" ", n)
}

// Keyword emits a keyword name at the given depth, or the flat export
// representation in export mode.
func (r *Renderer) Keyword(w io.Writer, kw alchemy.Keyword, depth int) io.Writer {
	if r.format.Export {
		fmt.Fprintf(w, "\t\t%s\n", kw.Name)
		return w
	}
	fmt.Fprintf(w, "%s%s\n", r.indent(depth), r.styled(TokenKeyword, kw.Name))
	return w
}

// Effect emits one effect line: the (possibly highlighted) name, then
// magnitude and duration right-aligned, each shown only when positive
// or when the all-flag is set. Verbose mode nests the effect's
// keywords beneath it.
func (r *Renderer) Effect(w io.Writer, fx alchemy.Effect, depth int) io.Writer {
	if r.format.Export {
		return r.exportEffect(w, fx)
	}

	token := r.format.EffectToken(fx)
	fmt.Fprintf(w, "%s%s", r.indent(depth), r.splitStyled(fx.Name, token))

	used := len(fx.Name)
	if fx.Magnitude > 0 || r.format.All {
		num := strconv.FormatFloat(fx.Magnitude, 'f', r.format.Precision, 64)
		fmt.Fprintf(w, "%s%s", pad(used), r.styled(TokenMagnitude, num))
		used = len(num) + 10
	}
	if fx.Duration > 0 || r.format.All {
		num := strconv.FormatUint(uint64(fx.Duration), 10)
		fmt.Fprintf(w, "%s%ss", pad(used), r.styled(TokenDuration, num))
	}
	fmt.Fprintln(w)

	if r.format.Verbose || r.format.All {
		for _, kw := range fx.Keywords {
			r.Keyword(w, kw, depth+1)
		}
	}
	return w
}

// Effects emits a list of effects at the given depth.
func (r *Renderer) Effects(w io.Writer, list []alchemy.Effect, depth int) io.Writer {
	for _, fx := range list {
		r.Effect(w, fx, depth)
	}
	return w
}

// Ingredient emits an ingredient: the re-parsable block in export
// mode, otherwise the highlighted name with its visible effects
// indented beneath it.
func (r *Renderer) Ingredient(w io.Writer, ingr alchemy.Ingredient, depth int) io.Writer {
	if r.format.Export {
		return r.exportIngredient(w, ingr)
	}
	fmt.Fprintf(w, "%s%s\n", r.indent(depth), r.splitStyled(ingr.Name, TokenIngredient))
	return r.Effects(w, r.format.VisibleEffects(ingr.Effects, r.terms), depth+1)
}

// Ingredients emits a list of ingredients in natural order, or back to
// front when the reverse flag is set.
func (r *Renderer) Ingredients(w io.Writer, list []alchemy.Ingredient, depth int) io.Writer {
	if r.format.Reverse {
		for i := len(list) - 1; i >= 0; i-- {
			r.Ingredient(w, list[i], depth)
		}
		return w
	}
	for _, ingr := range list {
		r.Ingredient(w, ingr, depth)
	}
	return w
}

// Potion emits the potion name followed by its final effects, using
// the same layout rules as an ingredient's human-readable form.
func (r *Renderer) Potion(w io.Writer, p alchemy.Potion, depth int) io.Writer {
	fmt.Fprintf(w, "%s%s\n", r.indent(depth), r.splitStyled(p.Name, TokenIngredient))
	return r.Effects(w, p.FinalEffects, depth+1)
}

// exportEffect writes one effect of an ingredient's export block.
// Magnitude keeps full precision so the block round-trips exactly.
func (r *Renderer) exportEffect(w io.Writer, fx alchemy.Effect) io.Writer {
	fmt.Fprintf(w, "\t%s\n\t{\n", fx.Name)
	fmt.Fprintf(w, "\t\tmagnitude = %s\n", strconv.FormatFloat(fx.Magnitude, 'g', -1, 64))
	fmt.Fprintf(w, "\t\tduration = %d\n", fx.Duration)
	for _, kw := range fx.Keywords {
		fmt.Fprintf(w, "\t\t%s\n", kw.Name)
	}
	fmt.Fprint(w, "\t}\n")
	return w
}

// exportIngredient writes the full re-parsable block for one
// ingredient.
func (r *Renderer) exportIngredient(w io.Writer, ingr alchemy.Ingredient) io.Writer {
	fmt.Fprintf(w, "%s\n{\n", ingr.Name)
	for _, fx := range ingr.Effects {
		if fx.Name == "" {
			continue
		}
		r.exportEffect(w, fx)
	}
	fmt.Fprint(w, "}\n")
	return w
}
