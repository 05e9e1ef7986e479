package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var errNoAttachment = errors.New("server returned no attachment document")

// NewUploadCommand creates the upload command: post a local file as an
// attachment for later linking to a module object.
func NewUploadCommand() *cobra.Command {
	var contentType string

	cmd := &cobra.Command{
		Use:   "upload MODULE FILE",
		Short: "Upload a file attachment",
		Long:  "Upload a local file as an attachment for the given Paradesk module",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := moduleByName(args[0])
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("reading file: %w", err)
			}

			config := loadConfig()

			sdk, err := newClient(config)
			if err != nil {
				return err
			}

			attachment, result := sdk.Attachments().Upload(context.Background(),
				module, filepath.Base(args[1]), contentType, data)
			if result.HasException {
				return callError(result)
			}

			if attachment == nil {
				return errNoAttachment
			}

			done, err := renderStructured(config.Output, attachment)
			if done || err != nil {
				return err
			}

			return renderTable([]string{"Property", "Value"}, [][]string{
				{"Name", attachment.Name},
				{"GUID", attachment.GUID},
				{"Href", attachment.Href},
			})
		},
	}

	cmd.Flags().StringVar(&contentType, "content-type", "application/octet-stream", "file media type")

	return cmd
}
