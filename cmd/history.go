package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kodekulture/wordlister/repository/file"
	"github.com/kodekulture/wordlister/service"
)

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect archived runs",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Print the id of every archived run",
			Args:  cobra.NoArgs,
			RunE: a.withArchive(func(cmd *cobra.Command, srv *service.Service, _ []string) error {
				ids, err := srv.Runs(cmd.Context())
				if err != nil {
					return err
				}
				for _, id := range ids {
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Print the lines of an archived run",
			Args:  cobra.ExactArgs(1),
			RunE: a.withArchive(func(cmd *cobra.Command, srv *service.Service, args []string) error {
				id, err := uuid.Parse(args[0])
				if err != nil {
					return err
				}
				lines, err := srv.Lines(cmd.Context(), id)
				if err != nil {
					return err
				}
				return file.New(a.fs, cmd.OutOrStdout()).Write(cmd.Context(), file.Stdout, lines)
			}),
		},
		&cobra.Command{
			Use:   "drop",
			Short: "Delete every archived run",
			Args:  cobra.NoArgs,
			RunE: a.withArchive(func(cmd *cobra.Command, srv *service.Service, _ []string) error {
				return srv.Clear(cmd.Context())
			}),
		},
	)
	return cmd
}

// withArchive runs fn with a service backed by the archive at --archive-path
func (a *app) withArchive(fn func(cmd *cobra.Command, srv *service.Service, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("archive-path")
		srv, release, err := a.service(path, true)
		if err != nil {
			return err
		}
		defer release()
		return fn(cmd, srv, args)
	}
}
