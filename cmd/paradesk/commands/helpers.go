package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/paradesk-io/paradesk-go/internal/client"
	"github.com/paradesk-io/paradesk-go/internal/constants"
	"github.com/paradesk-io/paradesk-go/pkg/paradesk"
)

var (
	errUnknownModule = errors.New("unknown module")
	errEmptyResponse = errors.New("server returned no decodable record")
)

// newClient builds an SDK client from the effective CLI configuration.
func newClient(config *Config) (paradesk.Client, error) {
	mode := paradesk.AutoRetryDisabled

	switch config.AutoRetry {
	case "default":
		mode = paradesk.AutoRetryDefault
	case "long-running":
		mode = paradesk.AutoRetryLongRunning
	}

	sdk, err := client.New(&paradesk.Config{
		Host:        config.Host,
		Instance:    config.Instance,
		Department:  config.Department,
		Token:       config.Token,
		AutoRetry:   mode,
		CallSpacing: config.CallSpacing,
	})
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return sdk, nil
}

// callError turns a failed CallResult into a command error.
func callError(result paradesk.CallResult) error {
	//nolint:err113
	return fmt.Errorf("API call failed (HTTP %d): %s", result.HTTPResponseCode, result.ExceptionDetails)
}

// renderStructured prints v as JSON or YAML. Returns false when the
// selected output format is the table default, which the caller renders.
func renderStructured(output string, v interface{}) (bool, error) {
	switch output {
	case constants.FormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return true, encoder.Encode(v)
	case constants.FormatYAML:
		return true, yaml.NewEncoder(os.Stdout).Encode(v)
	default:
		return false, nil
	}
}

// renderTable writes one table with a header row and data rows.
func renderTable(header []string, rows [][]string) error {
	table := tablewriter.NewWriter(os.Stdout)

	headerCells := make([]interface{}, len(header))
	for i, cell := range header {
		headerCells[i] = cell
	}

	table.Header(headerCells...)

	for _, row := range rows {
		cells := make([]interface{}, len(row))
		for i, cell := range row {
			cells[i] = cell
		}

		_ = table.Append(cells...)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}

// moduleByName resolves a CLI module argument.
func moduleByName(name string) (paradesk.Module, error) {
	modules := map[string]paradesk.Module{
		"customer": paradesk.ModuleCustomer,
		"ticket":   paradesk.ModuleTicket,
		"account":  paradesk.ModuleAccount,
		"product":  paradesk.ModuleProduct,
		"asset":    paradesk.ModuleAsset,
		"article":  paradesk.ModuleArticle,
		"download": paradesk.ModuleDownload,
	}

	module, ok := modules[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", errUnknownModule, name)
	}

	return module, nil
}
