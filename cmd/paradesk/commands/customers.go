package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/paradesk-io/paradesk-go/pkg/paradesk"
)

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Browse Paradesk customers",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	var (
		emailLike string
		page      int
		pageSize  int
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			sdk, err := newClient(config)
			if err != nil {
				return err
			}

			query := paradesk.NewQuery()
			query.PageNumber = page
			query.PageSize = pageSize
			query.RetrieveAll = all

			if emailLike != "" {
				query.AddFilter("Email", paradesk.CriteriaLike, emailLike)
			}

			list, result := sdk.Customers().GetList(context.Background(), query)
			if result.HasException {
				return callError(result)
			}

			done, err := renderStructured(config.Output, list.Data)
			if done || err != nil {
				return err
			}

			rows := make([][]string, 0, len(list.Data))
			for _, customer := range list.Data {
				rows = append(rows, []string{
					strconv.FormatInt(customer.ID, 10),
					customer.FirstName,
					customer.LastName,
					customer.Email,
					customer.DateCreated,
				})
			}

			return renderTable([]string{"ID", "First Name", "Last Name", "Email", "Created"}, rows)
		},
	}

	cmd.Flags().StringVar(&emailLike, "email-like", "", "filter by email substring")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "page size (0 = server default)")
	cmd.Flags().BoolVar(&all, "all", false, "retrieve every page")

	return cmd
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CUSTOMER_ID",
		Short: "Show one customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customerID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parsing customer id: %w", err)
			}

			config := loadConfig()

			sdk, err := newClient(config)
			if err != nil {
				return err
			}

			customer, result := sdk.Customers().GetDetails(context.Background(), customerID)
			if result.HasException {
				return callError(result)
			}

			if customer == nil {
				return errEmptyResponse
			}

			done, err := renderStructured(config.Output, customer)
			if done || err != nil {
				return err
			}

			rows := [][]string{
				{"ID", strconv.FormatInt(customer.ID, 10)},
				{"First Name", customer.FirstName},
				{"Last Name", customer.LastName},
				{"Email", customer.Email},
				{"Created", customer.DateCreated},
				{"Updated", customer.DateUpdated},
			}

			for _, field := range customer.CustomFields {
				rows = append(rows, []string{field.DisplayName, field.Value})
			}

			return renderTable([]string{"Property", "Value"}, rows)
		},
	}
}
