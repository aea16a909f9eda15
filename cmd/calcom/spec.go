package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bjaus/calcom"
)

func newSpecCmd() *cobra.Command {
	var (
		asYAML bool
		out    string
	)

	cmd := &cobra.Command{
		Use:   "spec",
		Short: "Print the OpenAPI document of the operation catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(filepath.Clean(out))
				if err != nil {
					return errors.Wrap(err, "create output file")
				}
				defer f.Close()
				w = f
			}
			return writeSpec(w, asYAML)
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "write YAML instead of JSON")
	cmd.Flags().StringVarP(&out, "output", "o", "", "write to a file instead of stdout")
	return cmd
}

func writeSpec(w io.Writer, asYAML bool) error {
	if asYAML {
		return errors.Wrap(calcom.Operations.WriteSpecYAML(w), "write spec")
	}
	return errors.Wrap(calcom.Operations.WriteSpec(w), "write spec")
}
