package commands

import (
	"bytes"
	"io"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"martianoff/wrap/wraperr"
)

// readDocument decodes the JSON document named by the last argument. A
// missing argument or "-" reads stdin.
func readDocument(cmd *cobra.Command, args []string) (any, error) {
	var data []byte
	if len(args) == 0 || args[len(args)-1] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, wraperr.NewSerializationError("json", "cannot read stdin", err)
		}
		data = b
	} else {
		data = []byte(args[len(args)-1])
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, wraperr.NewSerializationError("json", "empty document", io.ErrUnexpectedEOF)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, wraperr.NewSerializationError("json", "cannot decode document", err)
	}
	log.Debugf("Decoded %d bytes of input", len(data))
	return doc, nil
}
