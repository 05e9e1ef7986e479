// Package paradesk provides a Go client for the Paradesk XML REST API.
//
// The package exposes typed objects for the Paradesk modules (Customer,
// Ticket, Account, Product, Asset, SLA, Article) together with the call
// plumbing needed to talk to the service reliably: per-instance call
// throttling, layered retry policies for the vendor's transient failure
// modes, and a normalized CallResult describing the outcome of every
// operation.
//
// Remote failures are never surfaced as Go errors. Every operation returns
// a CallResult; callers inspect HasException and ExceptionDetails once any
// configured retries have been exhausted. Go errors are reserved for local
// misuse (missing configuration, invalid arguments).
//
// Basic usage:
//
//	sdk, err := client.New(&paradesk.Config{
//	    Host:       "api.paradesk.example",
//	    Instance:   1234,
//	    Department: 1,
//	    Token:      os.Getenv("PARADESK_TOKEN"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	customer, result := sdk.Customers().GetDetails(ctx, 42)
//	if result.HasException {
//	    log.Fatalf("get customer: %s", result.ExceptionDetails)
//	}
package paradesk
