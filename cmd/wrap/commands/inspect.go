package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTypeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "type [document]",
		Short: "Print the type tag of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.box(doc).Type())
			return nil
		},
	}
}

func newIsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "is <tag> [document]",
		Short: "Report whether a document has the given type tag",
		Long: `Is prints true or false. The tag is matched case-insensitively.

Examples:
  wrap is array '[1,2]'       # true
  wrap is STRING '"foo"'      # true
  wrap is number '"1"'        # false`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args[1:])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.box(doc).Is(args[0]))
			return nil
		},
	}
}

func newHashCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hash [document]",
		Short: "Print the structural hash code of a document",
		Long: `Hash prints the 32-bit structural hash code of a document.

Objects with the same keys and values hash alike regardless of key order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.box(doc).HashCode())
			return nil
		},
	}
}

func newStringCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "string [document]",
		Short: "Print the string form of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}
			s, err := a.box(doc).ToString()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}
