package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/paradesk-io/paradesk-go/pkg/paradesk"
)

var errHostRequired = errors.New("API host is required")

// NewLoginCommand creates the login command. It collects the credential
// scope, verifies it with a cheap list call, and persists the config.
func NewLoginCommand() *cobra.Command {
	var (
		host       string
		instance   int64
		department int64
		token      string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to Paradesk",
		Long:  "Store and verify credentials for a Paradesk instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			if host == "" {
				host = viper.GetString("host")
			}

			if host == "" {
				fmt.Print("API host: ")
				host, _ = reader.ReadString('\n')
				host = strings.TrimSpace(host)
			}

			if host == "" {
				return errHostRequired
			}

			if instance == 0 {
				instance = viper.GetInt64("instance")
			}

			if instance == 0 {
				fmt.Print("Instance id: ")

				line, _ := reader.ReadString('\n')

				parsed, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
				if err != nil {
					return fmt.Errorf("parsing instance id: %w", err)
				}

				instance = parsed
			}

			if department == 0 {
				department = viper.GetInt64("department")
			}

			if token == "" {
				token = viper.GetString("token")
			}

			if token == "" {
				fmt.Print("API token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("reading token: %w", err)
				}

				token = strings.TrimSpace(string(byteToken))

				fmt.Println()
			}

			sdk, err := newClient(&Config{
				Host:       host,
				Instance:   instance,
				Department: department,
				Token:      token,
			})
			if err != nil {
				return err
			}

			// A one-record SLA list is the cheapest credential check the
			// API offers.
			probe := paradesk.NewQuery()
			probe.PageSize = 1

			_, result := sdk.Slas().GetList(context.Background(), probe)
			if result.HasException {
				return fmt.Errorf("verifying credentials: %w", callError(result))
			}

			config := loadConfig()
			config.Host = host
			config.Instance = instance
			config.Department = department
			config.Token = token

			if err := saveConfig(config); err != nil {
				return err
			}

			fmt.Printf("Logged in to %s (instance %d)\n", host, instance)

			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "API server farm host")
	cmd.Flags().Int64Var(&instance, "instance", 0, "instance (account) id")
	cmd.Flags().Int64Var(&department, "department", 0, "department id")
	cmd.Flags().StringVar(&token, "token", "", "API token")

	return cmd
}
