package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lordvidex/errs"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/kodekulture/wordlister/service"
	"github.com/kodekulture/wordlister/service/hasher"
)

var (
	errNoCandidates = errs.B().Code(errs.InvalidArgument).Msg("one of --list or --run is required").Err()
	errNotFound     = errs.B().Code(errs.NotFound).Msg("no candidate matches the hash").Err()
)

func newAuditCmd(a *app) *cobra.Command {
	var hash, algo, list, run string
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check whether a hash was made from one of the candidates of a wordlist",
		Example: `  wordlister audit --hash 5f4dcc3b5aa765d61d8327deb882cf99 --algo md5 --list wordlist.txt
  wordlister audit --hash '$2a$10$...' --run 1b4e28ba-2fa1-11d2-883f-0016d3cca427`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := hasher.New(algo)
			if err != nil {
				return fmt.Errorf("%w: %s", err, algo)
			}
			path, _ := cmd.Flags().GetString("archive-path")
			srv, release, err := a.service(path, run != "")
			if err != nil {
				return err
			}
			defer release()

			lines, err := a.candidates(cmd, srv, list, run)
			if err != nil {
				return err
			}
			word, ok, err := srv.Audit(cmd.Context(), h, hash, lines)
			if err != nil {
				return err
			}
			if !ok {
				return errNotFound
			}
			fmt.Fprintln(cmd.OutOrStdout(), word)
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&hash, "hash", "", "hash to audit")
	fs.StringVar(&algo, "algo", "bcrypt", "hash algorithm: bcrypt, md5, sha1 or sha256")
	fs.StringVar(&list, "list", "", "wordlist file holding the candidates")
	fs.StringVar(&run, "run", "", "id of an archived run holding the candidates")
	_ = cmd.MarkFlagRequired("hash")
	cmd.MarkFlagsMutuallyExclusive("list", "run")
	return cmd
}

func (a *app) candidates(cmd *cobra.Command, srv *service.Service, list, run string) ([]string, error) {
	switch {
	case list != "":
		b, err := afero.ReadFile(a.fs, list)
		if err != nil {
			return nil, err
		}
		return strings.SplitAfter(strings.TrimSuffix(string(b), "\n"), "\n"), nil
	case run != "":
		id, err := uuid.Parse(run)
		if err != nil {
			return nil, err
		}
		return srv.Lines(cmd.Context(), id)
	}
	return nil, errNoCandidates
}
