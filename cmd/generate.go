package main

import (
	"fmt"

	"github.com/lordvidex/x/ptr"
	"github.com/spf13/cobra"

	"github.com/kodekulture/wordlister/internal/config"
	"github.com/kodekulture/wordlister/wordlist"
)

type generateFlags struct {
	optionFlags
	words     map[wordlist.Category]*[]string
	start     string
	order     string
	randomize bool
	seed      int64
	strategy  string
}

func newGenerateCmd(a *app) *cobra.Command {
	f := generateFlags{words: make(map[wordlist.Category]*[]string)}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Combine name, initials, years and tags into a wordlist",
		Example: `  wordlister generate --name bob --initials x --years 99 --tags admin -p 2 -l -o bob.txt
  wordlister generate --recipe bob.yaml --start years --order name,tags,initials`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.config(a, cmd)
			if err != nil {
				return err
			}
			archivePath, _ := cmd.Flags().GetString("archive-path")
			srv, release, err := a.service(archivePath, f.archive && !f.estimate)
			if err != nil {
				return err
			}
			defer release()

			if f.estimate {
				n, err := srv.Estimate(cfg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), n)
				return nil
			}
			_, err = srv.Generate(cmd.Context(), cfg)
			return err
		},
	}

	fs := cmd.Flags()
	for _, c := range wordlist.Categories {
		f.words[c] = fs.StringArray(c.String(), nil, fmt.Sprintf("%s words, repeatable; @file reads one word per line", c))
	}
	def := wordlist.DefaultConfig()
	fs.StringVar(&f.start, "start", def.Start.String(), "category placed first in every combination order")
	fs.StringVar(&f.order, "order", "initials,years,tags", "comma separated order of the remaining categories; disables --randomize")
	fs.BoolVar(&f.randomize, "randomize", def.Randomize, "shuffle the remaining categories once per run")
	fs.Int64Var(&f.seed, "seed", 0, "seed of the shuffle, for reproducible runs")
	fs.StringVar(&f.strategy, "strategy", def.Strategy.String(), "exhaustive: every category permutation per length; prefix: only the working order truncated")
	f.register(fs)
	return cmd
}

// config merges defaults, the recipe and the flags set on the command line, in that order
func (f *generateFlags) config(a *app, cmd *cobra.Command) (wordlist.Config, error) {
	cfg := wordlist.DefaultConfig()
	cfg.Output = config.Get("OUTPUT")

	rc, err := f.loadRecipe(a.fs)
	if err != nil {
		return cfg, err
	}
	if rc != nil {
		if err = rc.Apply(&cfg); err != nil {
			return cfg, err
		}
	}

	fs := cmd.Flags()
	f.apply(fs, &cfg.Options)
	for c, values := range f.words {
		if !fs.Changed(c.String()) {
			continue
		}
		if cfg.Input[c], err = readWords(a.fs, *values); err != nil {
			return cfg, err
		}
	}
	if fs.Changed("start") {
		if cfg.Start, err = wordlist.ParseCategory(f.start); err != nil {
			return cfg, err
		}
	}
	if fs.Changed("order") {
		if cfg.Order, err = wordlist.ParseOrder(f.order); err != nil {
			return cfg, err
		}
		if !fs.Changed("randomize") {
			cfg.Randomize = false
		}
	}
	if fs.Changed("randomize") {
		cfg.Randomize = f.randomize
	}
	if fs.Changed("seed") {
		cfg.Seed = ptr.Obj(f.seed)
	}
	if fs.Changed("strategy") {
		if cfg.Strategy, err = wordlist.ParseStrategy(f.strategy); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}
