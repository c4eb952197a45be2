package main

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/kodekulture/wordlister/internal/config"
	"github.com/kodekulture/wordlister/wordlist"
)

// optionFlags are the flags shared by generate and permute
type optionFlags struct {
	recipe   string
	archive  bool
	estimate bool

	depth      int
	min        int
	max        int
	leet       bool
	capitalize bool
	upper      bool
	appendWord string
	prepend    string
	sort       bool
	output     string
}

func (f *optionFlags) register(fs *pflag.FlagSet) {
	def := wordlist.DefaultOptions()
	fs.StringVar(&f.recipe, "recipe", "", "YAML recipe with words and options; flags override it")
	fs.BoolVar(&f.archive, "archive", false, "store the generated list in the run archive")
	fs.BoolVar(&f.estimate, "estimate", false, "print how many base candidates would be enumerated and exit")

	fs.IntVarP(&f.depth, "depth", "p", def.Depth, "maximum number of categories or words to combine")
	fs.IntVar(&f.min, "min", def.MinLength, "minimum candidate length")
	fs.IntVar(&f.max, "max", def.MaxLength, "maximum candidate length")
	fs.BoolVarP(&f.leet, "leet", "l", false, "add leet speak variants (o->0, a->4, e->3, i->1, s->5)")
	fs.BoolVarP(&f.capitalize, "cap", "c", false, "add capitalized words")
	fs.BoolVarP(&f.upper, "upper", "u", false, "add upper-cased words")
	fs.StringVarP(&f.appendWord, "append", "a", "", "word appended to every candidate")
	fs.StringVar(&f.prepend, "prepend", "", "word prepended to every candidate")
	fs.BoolVarP(&f.sort, "sort", "s", false, "sort the output by length")
	fs.StringVarP(&f.output, "output", "o", config.Get("OUTPUT"), `output file, "-" for stdout`)
}

// apply copies the flags the user set explicitly into o
func (f *optionFlags) apply(fs *pflag.FlagSet, o *wordlist.Options) {
	changed := fs.Changed
	if changed("depth") {
		o.Depth = f.depth
	}
	if changed("min") {
		o.MinLength = f.min
	}
	if changed("max") {
		o.MaxLength = f.max
	}
	if changed("leet") {
		o.Leet = f.leet
	}
	if changed("cap") {
		o.Capitalize = f.capitalize
	}
	if changed("upper") {
		o.Upper = f.upper
	}
	if changed("append") {
		o.Append = f.appendWord
	}
	if changed("prepend") {
		o.Prepend = f.prepend
	}
	if changed("sort") {
		o.Sort = f.sort
	}
	if changed("output") {
		o.Output = f.output
	}
}

// loadRecipe reads the recipe file, if any
func (f *optionFlags) loadRecipe(fs afero.Fs) (*wordlist.Recipe, error) {
	if f.recipe == "" {
		return nil, nil
	}
	r, err := fs.Open(f.recipe)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	rc, err := wordlist.LoadRecipe(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.recipe, err)
	}
	return &rc, nil
}

// readWords joins word flag values into newline separated text.
// A value starting with @ is replaced by the content of the named file.
func readWords(fs afero.Fs, values []string) (string, error) {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if path, ok := strings.CutPrefix(v, "@"); ok {
			b, err := afero.ReadFile(fs, path)
			if err != nil {
				return "", err
			}
			parts = append(parts, string(b))
			continue
		}
		parts = append(parts, v)
	}
	return strings.Join(parts, "\n"), nil
}
