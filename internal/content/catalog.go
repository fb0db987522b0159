// Package content holds the embedded game catalog: things to count,
// buddy faces, cheer lines and the adventure bonus challenges.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/playroom/internal/round"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Challenge is a fixed bonus question asked between adventure levels.
type Challenge struct {
	Kind     string `yaml:"kind"`
	Question string `yaml:"question"`
	Answer   int    `yaml:"answer"`
	Options  []int  `yaml:"options"`
}

// Cheers are the lines the buddy says.
type Cheers struct {
	Correct []string                `yaml:"correct"`
	Wrong   []string                `yaml:"wrong"`
	Prompt  map[round.Domain]string `yaml:"prompt"`
}

// Catalog is the parsed content file.
type Catalog struct {
	CountingItems []round.Item `yaml:"counting_items"`
	BasketItems   []round.Item `yaml:"basket_items"`
	Buddies       []string     `yaml:"buddies"`
	Cheers        Cheers       `yaml:"cheers"`
	Challenges    []Challenge  `yaml:"challenges"`
}

// Load parses and validates the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

// Parse decodes a single YAML document into a Catalog and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse catalog: multiple YAML documents are not supported")
		}
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// validate reports every problem found, not just the first.
func (c *Catalog) validate() error {
	var errs []string

	checkItems := func(list string, items []round.Item) {
		if len(items) == 0 {
			errs = append(errs, fmt.Sprintf("%s is empty", list))
		}
		for i, it := range items {
			if it.Symbol == "" || it.Name == "" {
				errs = append(errs, fmt.Sprintf("%s[%d] needs a symbol and a name", list, i))
			}
		}
	}
	checkItems("counting_items", c.CountingItems)
	checkItems("basket_items", c.BasketItems)

	if len(c.Buddies) == 0 {
		errs = append(errs, "buddies is empty")
	}
	if len(c.Cheers.Correct) == 0 || len(c.Cheers.Wrong) == 0 {
		errs = append(errs, "cheers need correct and wrong lines")
	}

	if len(c.Challenges) == 0 {
		errs = append(errs, "challenges is empty")
	}
	for i, ch := range c.Challenges {
		hits := 0
		seen := make(map[int]bool, len(ch.Options))
		for _, o := range ch.Options {
			if seen[o] {
				errs = append(errs, fmt.Sprintf("challenge %d (%q) repeats option %d", i, ch.Question, o))
			}
			seen[o] = true
			if o == ch.Answer {
				hits++
			}
		}
		if hits != 1 {
			errs = append(errs, fmt.Sprintf("challenge %d (%q) must list answer %d exactly once", i, ch.Question, ch.Answer))
		}
		if len(ch.Options) < 2 {
			errs = append(errs, fmt.Sprintf("challenge %d (%q) needs at least 2 options", i, ch.Question))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Buddy returns the buddy face for a level, cycling through the list.
func (c *Catalog) Buddy(level int) string {
	if len(c.Buddies) == 0 {
		return "🙂"
	}
	if level < 0 {
		level = -level
	}
	return c.Buddies[level%len(c.Buddies)]
}

// Cheer picks a line for the outcome.
func (c *Catalog) Cheer(src round.Source, correct bool) string {
	lines := c.Cheers.Wrong
	if correct {
		lines = c.Cheers.Correct
	}
	if len(lines) == 0 {
		return ""
	}
	return lines[src.IntN(len(lines))]
}

// Prompt returns the buddy's line shown with a new question.
func (c *Catalog) Prompt(d round.Domain) string {
	if p, ok := c.Cheers.Prompt[d]; ok {
		return p
	}
	return "You can do it!"
}
