package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/paradesk-io/paradesk-go/pkg/paradesk"
)

var errSchemaUnsupported = errors.New("module has no schema command support")

// NewSchemaCommand creates the schema command: it prints the custom field
// layout of a module, optionally with validation-probed field subtypes.
func NewSchemaCommand() *cobra.Command {
	var probeTypes bool

	cmd := &cobra.Command{
		Use:   "schema MODULE",
		Short: "Show a module's custom field schema",
		Long: `Show the custom field schema of a Paradesk module.

With --probe-types the CLI posts a probe object and reads the phone,
email, and URL field subtypes out of the validation responses. The probe
is deleted afterwards, but it does perform write calls.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := moduleByName(args[0])
			if err != nil {
				return err
			}

			config := loadConfig()

			sdk, err := newClient(config)
			if err != nil {
				return err
			}

			fields, result, err := schemaFields(context.Background(), sdk, module, probeTypes)
			if err != nil {
				return err
			}

			if result.HasException {
				return callError(result)
			}

			done, err := renderStructured(config.Output, fields)
			if done || err != nil {
				return err
			}

			rows := make([][]string, 0, len(fields))
			for _, field := range fields {
				rows = append(rows, []string{
					strconv.FormatInt(field.ID, 10),
					field.DisplayName,
					string(field.DataType),
					strconv.FormatBool(field.Required),
					strconv.FormatBool(field.Editable),
				})
			}

			return renderTable([]string{"ID", "Name", "Type", "Required", "Editable"}, rows)
		},
	}

	cmd.Flags().BoolVar(&probeTypes, "probe-types", false, "probe phone/email/URL field subtypes (performs writes)")

	return cmd
}

//nolint:cyclop
func schemaFields(ctx context.Context, sdk paradesk.Client, module paradesk.Module, probe bool) ([]paradesk.CustomField, paradesk.CallResult, error) {
	switch module {
	case paradesk.ModuleCustomer:
		if probe {
			schema, result := sdk.Customers().SchemaWithCustomFieldTypes(ctx)

			return customFieldsOf(schema), result, nil
		}

		schema, result := sdk.Customers().Schema(ctx)

		return customFieldsOf(schema), result, nil

	case paradesk.ModuleTicket:
		if probe {
			schema, result := sdk.Tickets().SchemaWithCustomFieldTypes(ctx)

			return customFieldsOf(schema), result, nil
		}

		schema, result := sdk.Tickets().Schema(ctx)

		return customFieldsOf(schema), result, nil

	case paradesk.ModuleAccount:
		if probe {
			schema, result := sdk.Accounts().SchemaWithCustomFieldTypes(ctx)

			return customFieldsOf(schema), result, nil
		}

		schema, result := sdk.Accounts().Schema(ctx)

		return customFieldsOf(schema), result, nil

	case paradesk.ModuleProduct:
		schema, result := sdk.Products().Schema(ctx)

		return customFieldsOf(schema), result, nil

	case paradesk.ModuleAsset:
		schema, result := sdk.Assets().Schema(ctx)

		return customFieldsOf(schema), result, nil

	case paradesk.ModuleArticle:
		schema, result := sdk.Articles().Schema(ctx)

		return customFieldsOf(schema), result, nil

	default:
		return nil, paradesk.CallResult{}, fmt.Errorf("%w: %s", errSchemaUnsupported, module)
	}
}

// customFieldsOf pulls the custom field slice out of any schema entity.
func customFieldsOf(schema interface{}) []paradesk.CustomField {
	switch s := schema.(type) {
	case *paradesk.Customer:
		if s != nil {
			return s.CustomFields
		}
	case *paradesk.Ticket:
		if s != nil {
			return s.CustomFields
		}
	case *paradesk.Account:
		if s != nil {
			return s.CustomFields
		}
	case *paradesk.Product:
		if s != nil {
			return s.CustomFields
		}
	case *paradesk.Asset:
		if s != nil {
			return s.CustomFields
		}
	case *paradesk.Article:
		if s != nil {
			return s.CustomFields
		}
	}

	return nil
}
