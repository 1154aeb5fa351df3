package commands

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"martianoff/wrap/wraperr"
)

func newIterCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "iter [document]",
		Short: "List the entries of an array or object",
		Long: `Iter prints one line per entry: the key, a tab, and the value as JSON.

Object keys are listed in sorted order. Other documents are rejected.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}
			b := a.box(doc)
			it, ok := b.Iter()
			if !ok {
				return wraperr.NewTypeError(string(b.Type()), "not iterable")
			}

			out := cmd.OutOrStdout()
			for e, ok := it.Next(); ok; e, ok = it.Next() {
				data, err := json.Marshal(e.Value)
				if err != nil {
					return wraperr.NewSerializationError("json", "cannot encode entry "+e.Name, err)
				}
				fmt.Fprintf(out, "%s\t%s\n", e.Name, data)
			}
			return nil
		},
	}
}
