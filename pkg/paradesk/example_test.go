package paradesk_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/paradesk-io/paradesk-go/internal/client"
	"github.com/paradesk-io/paradesk-go/pkg/paradesk"
)

func Example() {
	sdk, err := client.New(&paradesk.Config{
		Host:       "api.paradesk.example",
		Instance:   1234,
		Department: 1,
		Token:      os.Getenv("PARADESK_TOKEN"),
	})
	if err != nil {
		log.Fatal(err)
	}

	customer, result := sdk.Customers().GetDetails(context.Background(), 42)
	if result.HasException {
		log.Fatalf("get customer: %s", result.ExceptionDetails)
	}

	fmt.Println(customer.Email)
}
