package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/lumera-core/lumera-cli/internal/erp"
	"github.com/lumera-core/lumera-cli/internal/tui"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage products of the active company",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		products, err := app.API.ListProducts(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(products))
		for _, p := range products {
			rows = append(rows, []string{p.ID, p.Name, p.SKU, p.Price.StringFixed(2), string(p.Status)})
		}
		tui.RenderTable(cmd.OutOrStdout(), []string{"ID", "NAME", "SKU", "PRICE", "STATUS"}, rows)
		return nil
	},
}

var productsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		p, err := app.API.GetProduct(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ID:          %s\n", p.ID)
		fmt.Fprintf(out, "Name:        %s\n", p.Name)
		fmt.Fprintf(out, "SKU:         %s\n", p.SKU)
		fmt.Fprintf(out, "Price:       %s\n", p.Price.StringFixed(2))
		fmt.Fprintf(out, "Description: %s\n", p.Description)
		fmt.Fprintf(out, "Status:      %s\n", p.Status)
		printCustomFields(out, p.CustomFields)
		return nil
	},
}

var productsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		input, err := productInputFromFlags(cmd, app, erp.ProductInput{})
		if err != nil {
			return err
		}

		id, err := app.API.CreateProduct(cmd.Context(), input)
		if err != nil {
			return err
		}

		fmt.Printf("Created product %s\n", id)
		return nil
	},
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		current, err := app.API.GetProduct(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		base := erp.ProductInput{
			Name:         current.Name,
			SKU:          current.SKU,
			Price:        current.Price,
			Description:  current.Description,
			CustomFields: current.CustomFields,
		}

		input, err := productInputFromFlags(cmd, app, base)
		if err != nil {
			return err
		}

		if err := app.API.UpdateProduct(cmd.Context(), args[0], input); err != nil {
			return err
		}

		fmt.Printf("Updated product %s\n", args[0])
		return nil
	},
}

var productsStatusCmd = &cobra.Command{
	Use:   "status <id> <active|inactive>",
	Short: "Activate or deactivate a product",
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

		ok, err := app.confirmDeactivation("product "+args[0], status)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}

		if err := app.API.ChangeProductStatus(cmd.Context(), args[0], status); err != nil {
			return err
		}

		fmt.Printf("Product %s is now %s\n", args[0], status)
		return nil
	},
}

func productInputFromFlags(cmd *cobra.Command, app *App, input erp.ProductInput) (erp.ProductInput, error) {
	if v, _ := cmd.Flags().GetString("name"); v != "" {
		input.Name = v
	}
	if v, _ := cmd.Flags().GetString("sku"); v != "" {
		input.SKU = v
	}
	if v, _ := cmd.Flags().GetString("description"); v != "" {
		input.Description = v
	}
	if v, _ := cmd.Flags().GetString("price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return input, fmt.Errorf("invalid --price %q: %w", v, err)
		}
		input.Price = price
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
		if input.Name, err = tui.PromptForString(tui.Prompt{Message: "Product name", Required: true}); err != nil {
			return input, err
		}
	}
	if input.Price.IsZero() && app.canPrompt() {
		raw, err := tui.PromptForString(tui.Prompt{Message: "Price", Placeholder: "0.00", Required: true})
		if err != nil {
			return input, err
		}
		if input.Price, err = decimal.NewFromString(raw); err != nil {
			return input, fmt.Errorf("invalid price %q: %w", raw, err)
		}
	}
	if input.Name == "" {
		return input, fmt.Errorf("--name is required")
	}
	return input, nil
}

func addProductInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Product name")
	cmd.Flags().String("sku", "", "Stock keeping unit")
	cmd.Flags().String("price", "", "Unit price, e.g. 19.99")
	cmd.Flags().String("description", "", "Description")
	cmd.Flags().StringArray("field", nil, "Custom field as key=value (repeatable)")
}

func init() {
	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsShowCmd)
	productsCmd.AddCommand(productsCreateCmd)
	productsCmd.AddCommand(productsUpdateCmd)
	productsCmd.AddCommand(productsStatusCmd)

	addProductInputFlags(productsCreateCmd)
	addProductInputFlags(productsUpdateCmd)

	rootCmd.AddCommand(productsCmd)
}
