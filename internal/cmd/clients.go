package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumera-core/lumera-cli/internal/erp"
	"github.com/lumera-core/lumera-cli/internal/tui"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage clients of the active company",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		clients, err := app.API.ListClients(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(clients))
		for _, c := range clients {
			rows = append(rows, []string{c.ID, c.Name, c.Email, c.Phone, string(c.Status)})
		}
		tui.RenderTable(cmd.OutOrStdout(), []string{"ID", "NAME", "EMAIL", "PHONE", "STATUS"}, rows)
		return nil
	},
}

var clientsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		c, err := app.API.GetClient(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ID:      %s\n", c.ID)
		fmt.Fprintf(out, "Name:    %s\n", c.Name)
		fmt.Fprintf(out, "Email:   %s\n", c.Email)
		fmt.Fprintf(out, "Phone:   %s\n", c.Phone)
		fmt.Fprintf(out, "Tax ID:  %s\n", c.TaxID)
		fmt.Fprintf(out, "Address: %s\n", c.Address)
		fmt.Fprintf(out, "Status:  %s\n", c.Status)
		printCustomFields(out, c.CustomFields)
		return nil
	},
}

var clientsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a client",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		input, err := clientInputFromFlags(cmd, app, erp.ClientInput{})
		if err != nil {
			return err
		}

		id, err := app.API.CreateClient(cmd.Context(), input)
		if err != nil {
			return err
		}

		fmt.Printf("Created client %s\n", id)
		return nil
	},
}

var clientsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		current, err := app.API.GetClient(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		base := erp.ClientInput{
			Name:         current.Name,
			Email:        current.Email,
			Phone:        current.Phone,
			TaxID:        current.TaxID,
			Address:      current.Address,
			CustomFields: current.CustomFields,
		}

		input, err := clientInputFromFlags(cmd, app, base)
		if err != nil {
			return err
		}

		if err := app.API.UpdateClient(cmd.Context(), args[0], input); err != nil {
			return err
		}

		fmt.Printf("Updated client %s\n", args[0])
		return nil
	},
}

var clientsStatusCmd = &cobra.Command{
	Use:   "status <id> <active|inactive>",
	Short: "Activate or deactivate a client",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		status, err := parseStatus(args[1])
		if err != nil {
			return err
		}

		ok, err := app.confirmDeactivation("client "+args[0], status)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}

		if err := app.API.ChangeClientStatus(cmd.Context(), args[0], status); err != nil {
			return err
		}

		fmt.Printf("Client %s is now %s\n", args[0], status)
		return nil
	},
}

func clientInputFromFlags(cmd *cobra.Command, app *App, input erp.ClientInput) (erp.ClientInput, error) {
	if v, _ := cmd.Flags().GetString("name"); v != "" {
		input.Name = v
	}
	if v, _ := cmd.Flags().GetString("email"); v != "" {
		input.Email = v
	}
	if v, _ := cmd.Flags().GetString("phone"); v != "" {
		input.Phone = v
	}
	if v, _ := cmd.Flags().GetString("tax-id"); v != "" {
		input.TaxID = v
	}
	if v, _ := cmd.Flags().GetString("address"); v != "" {
		input.Address = v
	}

	fields, _ := cmd.Flags().GetStringArray("field")
	custom, err := parseFieldFlags(fields)
	if err != nil {
		return input, err
	}
	if len(custom) > 0 {
		if input.CustomFields == nil {
			input.CustomFields = make(map[string]any)
		}
		for k, v := range custom {
			input.CustomFields[k] = v
		}
	}

	if input.Name == "" && app.canPrompt() {
		if input.Name, err = tui.PromptForString(tui.Prompt{Message: "Client name", Required: true}); err != nil {
			return input, err
		}
	}
	if input.Name == "" {
		return input, fmt.Errorf("--name is required")
	}
	return input, nil
}

func addClientInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Client name")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("tax-id", "", "Tax identifier")
	cmd.Flags().String("address", "", "Postal address")
	cmd.Flags().StringArray("field", nil, "Custom field as key=value (repeatable)")
}

func init() {
	clientsCmd.AddCommand(clientsListCmd)
	clientsCmd.AddCommand(clientsShowCmd)
	clientsCmd.AddCommand(clientsCreateCmd)
	clientsCmd.AddCommand(clientsUpdateCmd)
	clientsCmd.AddCommand(clientsStatusCmd)

	addClientInputFlags(clientsCreateCmd)
	addClientInputFlags(clientsUpdateCmd)

	rootCmd.AddCommand(clientsCmd)
}
