package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"martianoff/wrap/internal/config"
	"martianoff/wrap/wrap"
)

func newJSONCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "json [document]",
		Short: "Re-encode a document as JSON or CBOR",
		Long: `Json prints the document as compact JSON, or as hex-encoded canonical
CBOR with -o cbor. The default comes from the "output" config key.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := a.cfg.Output
			if output != "" {
				format = output
			}

			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}
			b := a.box(doc)

			switch format {
			case config.OutputJSON:
				s, err := b.ToJSON()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
			case config.OutputCBOR:
				data, err := b.ToCBOR()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
			default:
				return fmt.Errorf("unknown output format %q", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format: json or cbor")
	return cmd
}

func newCloneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clone [document]",
		Short: "Clone a document and print the copy",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}
			b := a.box(doc)
			clone, err := b.Clone()
			if err != nil {
				return err
			}

			copied := wrap.New(clone)
			log.WithFields(log.Fields{
				"source": b.HashCode(),
				"clone":  copied.HashCode(),
			}).Debug("Cloned document")

			data, err := json.Marshal(copied)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
