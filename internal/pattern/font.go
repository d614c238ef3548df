package pattern

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/mossline/mossline/internal/output"
)

//go:embed font.yaml
var fontYAML []byte

// fontFile is the on-disk shape of the embedded font document.
type fontFile struct {
	Glyphs   map[string][]string `yaml:"glyphs"`
	Patterns map[string][]string `yaml:"patterns"`
}

// font holds the parsed built-in font: validated glyph grids and named
// glyph sequences.
type font struct {
	glyphs   map[string]Grid
	patterns map[string][]string
}

// loadFont parses and validates the embedded font exactly once.
var loadFont = sync.OnceValues(func() (*font, error) {
	var file fontFile
	if err := yaml.Unmarshal(fontYAML, &file); err != nil {
		return nil, fmt.Errorf("parsing built-in font: %w", err)
	}

	parsed := &font{
		glyphs:   make(map[string]Grid, len(file.Glyphs)),
		patterns: file.Patterns,
	}
	for name, rows := range file.Glyphs {
		grid, err := New(rows)
		if err != nil {
			return nil, fmt.Errorf("built-in glyph %q: %w", name, err)
		}
		parsed.glyphs[name] = grid
	}

	for name, sequence := range file.Patterns {
		if len(sequence) == 0 {
			return nil, fmt.Errorf("built-in pattern %q has no glyphs", name)
		}
		for _, glyphName := range sequence {
			if _, ok := parsed.glyphs[glyphName]; !ok {
				return nil, fmt.Errorf("built-in pattern %q references unknown glyph %q", name, glyphName)
			}
		}
	}
	return parsed, nil
})

// Lookup resolves a pattern name, case-insensitively, to a compiled grid.
// Multi-glyph patterns are combined with a blank gap column between
// glyphs; single glyph names resolve directly. Unknown names return a
// user error listing every valid name.
func Lookup(name string) (Grid, error) {
	parsed, err := loadFont()
	if err != nil {
		return Grid{}, output.NewSystemErrorWithCause("failed to load built-in font", err)
	}

	key := strings.ToLower(name)

	if sequence, ok := parsed.patterns[key]; ok {
		grids := make([]Grid, len(sequence))
		for i, glyphName := range sequence {
			grids[i] = parsed.glyphs[glyphName]
		}
		grid, err := Combine(grids...)
		if err != nil {
			return Grid{}, output.NewSystemErrorWithCause("failed to compile pattern "+name, err)
		}
		return grid, nil
	}

	if grid, ok := parsed.glyphs[key]; ok {
		return grid, nil
	}

	return Grid{}, output.NewUserError("unknown pattern: " + name +
		" (valid patterns: " + strings.Join(Names(), ", ") + ")")
}

// Names returns every valid pattern name, sorted: named patterns plus
// single glyphs.
func Names() []string {
	parsed, err := loadFont()
	if err != nil {
		return nil
	}

	seen := make(map[string]bool, len(parsed.patterns)+len(parsed.glyphs))
	for name := range parsed.patterns {
		seen[name] = true
	}
	for name := range parsed.glyphs {
		seen[name] = true
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
