// Package gamedata parses ingredient registry files: the line-oriented
// block format the export renderer emits, so a previous run's output
// can be piped back in.
package gamedata

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"alembic/internal/alchemy"
	"alembic/internal/log"
)

// Registry block grammar, one block per ingredient:
//
//	<name>
//	{
//		<effect name>
//		{
//			magnitude = <float>
//			duration = <uint>
//			<keyword>...
//		}
//	}
//
// Round-tripping through the export renderer reproduces an equivalent
// ingredient record modulo field ordering.

type parser struct {
	sc   *bufio.Scanner
	line int
}

// next returns the next non-blank line with surrounding whitespace
// trimmed, or false at EOF.
func (p *parser) next() (string, bool) {
	for p.sc.Scan() {
		p.line++
		s := strings.TrimSpace(p.sc.Text())
		if s != "" {
			return s, true
		}
	}
	return "", false
}

func (p *parser) errf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s", p.line, fmt.Sprintf(format, args...))
}

// Parse reads every ingredient block from r. The returned list is
// unordered; the catalog is responsible for sorting and deduplication.
func Parse(r io.Reader) ([]alchemy.Ingredient, error) {
	p := &parser{sc: bufio.NewScanner(r)}
	var list []alchemy.Ingredient
	for {
		name, ok := p.next()
		if !ok {
			break
		}
		ingr, err := p.parseIngredient(name)
		if err != nil {
			return nil, err
		}
		list = append(list, ingr)
	}
	if err := p.sc.Err(); err != nil {
		return nil, fmt.Errorf("reading registry: %w", err)
	}
	log.Debug(log.CatGamedata, "parsed registry", "ingredients", len(list))
	return list, nil
}

// ParseFile reads every ingredient block from the file at path.
func ParseFile(path string) ([]alchemy.Ingredient, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is the user-chosen registry file
	if err != nil {
		return nil, fmt.Errorf("opening registry: %w", err)
	}
	defer f.Close()

	list, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return list, nil
}

func (p *parser) parseIngredient(name string) (alchemy.Ingredient, error) {
	ingr := alchemy.Ingredient{Name: name}

	open, ok := p.next()
	if !ok {
		return ingr, p.errf("ingredient %q: unexpected end of input", name)
	}
	if open != "{" {
		return ingr, p.errf("ingredient %q: expected '{', got %q", name, open)
	}

	slot := 0
	for {
		line, ok := p.next()
		if !ok {
			return ingr, p.errf("ingredient %q: unexpected end of input", name)
		}
		if line == "}" {
			return ingr, nil
		}
		if slot >= alchemy.EffectSlots {
			return ingr, p.errf("ingredient %q: more than %d effects", name, alchemy.EffectSlots)
		}
		fx, err := p.parseEffect(line)
		if err != nil {
			return ingr, fmt.Errorf("ingredient %q: %w", name, err)
		}
		ingr.Effects[slot] = fx
		slot++
	}
}

func (p *parser) parseEffect(name string) (alchemy.Effect, error) {
	fx := alchemy.Effect{Name: name}

	open, ok := p.next()
	if !ok {
		return fx, p.errf("effect %q: unexpected end of input", name)
	}
	if open != "{" {
		return fx, p.errf("effect %q: expected '{', got %q", name, open)
	}

	for {
		line, ok := p.next()
		if !ok {
			return fx, p.errf("effect %q: unexpected end of input", name)
		}
		if line == "}" {
			return fx, nil
		}
		if key, value, found := strings.Cut(line, "="); found {
			key = strings.TrimSpace(key)
			value = strings.TrimSpace(value)
			switch key {
			case "magnitude":
				mag, err := strconv.ParseFloat(value, 64)
				if err != nil {
					return fx, p.errf("effect %q: bad magnitude %q", name, value)
				}
				fx.Magnitude = mag
			case "duration":
				dur, err := strconv.ParseUint(value, 10, 32)
				if err != nil {
					return fx, p.errf("effect %q: bad duration %q", name, value)
				}
				fx.Duration = uint(dur)
			default:
				return fx, p.errf("effect %q: unknown field %q", name, key)
			}
			continue
		}
		// Any other line inside an effect block is a keyword.
		fx.Keywords = append(fx.Keywords, alchemy.Keyword{Name: line})
	}
}
