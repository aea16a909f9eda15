package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bjaus/calcom"
)

// nullWord on a nullable string flag sends an explicit null.
const nullWord = "null"

// changed returns v as a set Opt when the flag was given.
func changed[T any](cmd *cobra.Command, name string, v T) calcom.Opt[T] {
	if !cmd.Flags().Changed(name) {
		return calcom.Opt[T]{}
	}
	return calcom.Some(v)
}

// nullable is changed for flags whose field accepts null.
func nullable[T ~string](cmd *cobra.Command, name string, v T) calcom.Opt[T] {
	if cmd.Flags().Changed(name) && string(v) == nullWord {
		return calcom.Null[T]()
	}
	return changed(cmd, name, v)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse ID %q", arg)
	}
	return id, nil
}

// idCmd builds a subcommand that takes one numeric ID and prints the result
// of run.
func idCmd(use, short string, run func(cmd *cobra.Command, id int64) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			out, err := run(cmd, id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

// listCmd builds a subcommand without arguments that prints the result of
// run.
func listCmd(use, short string, run func(cmd *cobra.Command) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := run(cmd)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}
