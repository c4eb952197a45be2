package wordlist

import (
	"fmt"
	"io"
	"strings"

	"github.com/lordvidex/x/ptr"
	"gopkg.in/yaml.v3"
)

// Recipe is a YAML description of a run. Unset fields leave the Config untouched.
//
//	categories:
//	  name: [bob, alice]
//	  years: ["1999", "99"]
//	start: name
//	order: [initials, years, tags]
//	depth: 2
//	leet: true
type Recipe struct {
	Categories map[string][]string `yaml:"categories"`
	Words      []string            `yaml:"words"`
	Start      *string             `yaml:"start"`
	Order      []string            `yaml:"order"`
	Randomize  *bool               `yaml:"randomize"`
	Seed       *int64              `yaml:"seed"`
	Strategy   *string             `yaml:"strategy"`
	Depth      *int                `yaml:"depth"`
	Min        *int                `yaml:"min"`
	Max        *int                `yaml:"max"`
	Leet       *bool               `yaml:"leet"`
	Capitalize *bool               `yaml:"capitalize"`
	Upper      *bool               `yaml:"upper"`
	Append     *string             `yaml:"append"`
	Prepend    *string             `yaml:"prepend"`
	Sort       *bool               `yaml:"sort"`
	Output     *string             `yaml:"output"`
}

// LoadRecipe decodes a YAML recipe
func LoadRecipe(r io.Reader) (Recipe, error) {
	var rc Recipe
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rc); err != nil && err != io.EOF {
		return Recipe{}, fmt.Errorf("decode recipe: %w", err)
	}
	return rc, nil
}

// ApplyOptions copies the shared options set in the recipe into o
func (rc Recipe) ApplyOptions(o *Options) {
	assign(&o.Depth, rc.Depth)
	assign(&o.MinLength, rc.Min)
	assign(&o.MaxLength, rc.Max)
	assign(&o.Leet, rc.Leet)
	assign(&o.Capitalize, rc.Capitalize)
	assign(&o.Upper, rc.Upper)
	assign(&o.Sort, rc.Sort)
	assign(&o.Append, rc.Append)
	assign(&o.Prepend, rc.Prepend)
	assign(&o.Output, rc.Output)
}

// Apply copies every field set in the recipe into cfg
func (rc Recipe) Apply(cfg *Config) error {
	rc.ApplyOptions(&cfg.Options)
	if cfg.Input == nil {
		cfg.Input = make(map[Category]string)
	}
	for name, words := range rc.Categories {
		c, err := ParseCategory(name)
		if err != nil {
			return err
		}
		cfg.Input[c] = strings.Join(words, "\n")
	}
	if rc.Start != nil {
		c, err := ParseCategory(*rc.Start)
		if err != nil {
			return err
		}
		cfg.Start = c
	}
	if len(rc.Order) > 0 {
		order, err := ParseOrder(strings.Join(rc.Order, ","))
		if err != nil {
			return err
		}
		cfg.Order = order
	}
	assign(&cfg.Randomize, rc.Randomize)
	if rc.Seed != nil {
		cfg.Seed = ptr.Obj(*rc.Seed)
	}
	if rc.Strategy != nil {
		s, err := ParseStrategy(*rc.Strategy)
		if err != nil {
			return err
		}
		cfg.Strategy = s
	}
	return nil
}

// ApplyPermute copies every field set in the recipe into cfg
func (rc Recipe) ApplyPermute(cfg *PermuteConfig) {
	rc.ApplyOptions(&cfg.Options)
	if len(rc.Words) > 0 {
		cfg.Words = strings.Join(rc.Words, "\n")
	}
}

// assign overwrites dst when v is present
func assign[T any](dst *T, v *T) {
	if v != nil {
		*dst = ptr.ToObj(v)
	}
}
