package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/paradesk-io/paradesk-go/pkg/paradesk"
)

// NewTicketsCommand creates the tickets command group.
func NewTicketsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tickets",
		Short: "Browse Paradesk tickets",
	}

	cmd.AddCommand(newTicketsListCommand())
	cmd.AddCommand(newTicketsGetCommand())

	return cmd
}

func newTicketsListCommand() *cobra.Command {
	var (
		statusEquals string
		page         int
		pageSize     int
		all          bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tickets",
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
			query.SortBy("Date_Created", paradesk.SortDesc)

			if statusEquals != "" {
				query.AddFilter("Ticket_Status", paradesk.CriteriaEqual, statusEquals)
			}

			list, result := sdk.Tickets().GetList(context.Background(), query)
			if result.HasException {
				return callError(result)
			}

			done, err := renderStructured(config.Output, list.Data)
			if done || err != nil {
				return err
			}

			rows := make([][]string, 0, len(list.Data))
			for _, ticket := range list.Data {
				status := ""
				if ticket.Status != nil {
					status = ticket.Status.Name
				}

				assignee := ""
				if ticket.AssignedTo != nil {
					assignee = ticket.AssignedTo.Name
				}

				rows = append(rows, []string{
					strconv.FormatInt(ticket.ID, 10),
					ticket.TicketNumber,
					ticket.Summary,
					status,
					assignee,
				})
			}

			return renderTable([]string{"ID", "Number", "Summary", "Status", "Assigned To"}, rows)
		},
	}

	cmd.Flags().StringVar(&statusEquals, "status", "", "filter by status id")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "page size (0 = server default)")
	cmd.Flags().BoolVar(&all, "all", false, "retrieve every page")

	return cmd
}

func newTicketsGetCommand() *cobra.Command {
	var withHistory bool

	cmd := &cobra.Command{
		Use:   "get TICKET_ID",
		Short: "Show one ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ticketID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parsing ticket id: %w", err)
			}

			config := loadConfig()

			sdk, err := newClient(config)
			if err != nil {
				return err
			}

			ctx := context.Background()

			var (
				ticket *paradesk.Ticket
				result paradesk.CallResult
			)

			if withHistory {
				ticket, result = sdk.Tickets().GetDetailsWithHistory(ctx, ticketID)
			} else {
				ticket, result = sdk.Tickets().GetDetails(ctx, ticketID)
			}

			if result.HasException {
				return callError(result)
			}

			if ticket == nil {
				return errEmptyResponse
			}

			done, err := renderStructured(config.Output, ticket)
			if done || err != nil {
				return err
			}

			status := ""
			if ticket.Status != nil {
				status = ticket.Status.Name
			}

			rows := [][]string{
				{"ID", strconv.FormatInt(ticket.ID, 10)},
				{"Number", ticket.TicketNumber},
				{"Summary", ticket.Summary},
				{"Status", status},
				{"Created", ticket.DateCreated},
				{"Updated", ticket.DateUpdated},
			}

			for _, action := range ticket.ActionHistory {
				rows = append(rows, []string{"Action " + action.Date, action.Name + ": " + action.Comment})
			}

			return renderTable([]string{"Property", "Value"}, rows)
		},
	}

	cmd.Flags().BoolVar(&withHistory, "history", false, "include the ticket's action history")

	return cmd
}
