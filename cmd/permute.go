package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kodekulture/wordlister/internal/config"
	"github.com/kodekulture/wordlister/wordlist"
)

func newPermuteCmd(a *app) *cobra.Command {
	var (
		f     optionFlags
		words []string
	)
	cmd := &cobra.Command{
		Use:     "permute",
		Short:   "Permute the words of a single list",
		Example: `  wordlister permute --words @words.txt -p 2 --min 6 --max 12 -c -o perms.txt`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := wordlist.PermuteConfig{Options: wordlist.DefaultOptions()}
			cfg.Output = config.Get("OUTPUT")
			rc, err := f.loadRecipe(a.fs)
			if err != nil {
				return err
			}
			if rc != nil {
				rc.ApplyPermute(&cfg)
			}
			f.apply(cmd.Flags(), &cfg.Options)
			if cmd.Flags().Changed("words") {
				if cfg.Words, err = readWords(a.fs, words); err != nil {
					return err
				}
			}

			archivePath, _ := cmd.Flags().GetString("archive-path")
			srv, release, err := a.service(archivePath, f.archive && !f.estimate)
			if err != nil {
				return err
			}
			defer release()

			if f.estimate {
				n, err := srv.EstimatePermute(cfg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), n)
				return nil
			}
			_, err = srv.Permute(cmd.Context(), cfg)
			return err
		},
	}
	cmd.Flags().StringArrayVarP(&words, "words", "w", nil, "words to permute, repeatable; @file reads one word per line")
	f.register(cmd.Flags())
	return cmd
}
