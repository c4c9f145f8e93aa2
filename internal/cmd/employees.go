package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumera-core/lumera-cli/internal/erp"
	"github.com/lumera-core/lumera-cli/internal/tui"
)

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "Manage employees of the active company",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var employeesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		employees, err := app.API.ListEmployees(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(employees))
		for _, e := range employees {
			rows = append(rows, []string{
				e.ID,
				e.FirstName + " " + e.LastName,
				e.Email,
				e.Position,
				string(e.Status),
			})
		}

		headers := []string{"ID", "NAME", "EMAIL", "POSITION", "STATUS"}
		if interactive, _ := cmd.Flags().GetBool("interactive"); interactive && app.canPrompt() {
			id, err := tui.BrowseTable(headers, rows)
			if err != nil {
				return err
			}
			if id != "" {
				return showEmployee(cmd, app, id)
			}
			return nil
		}

		tui.RenderTable(cmd.OutOrStdout(), headers, rows)
		return nil
	},
}

var employeesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}
		return showEmployee(cmd, app, args[0])
	},
}

func showEmployee(cmd *cobra.Command, app *App, id string) error {
	e, err := app.API.GetEmployee(cmd.Context(), id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:         %s\n", e.ID)
	fmt.Fprintf(out, "Name:       %s %s\n", e.FirstName, e.LastName)
	fmt.Fprintf(out, "Email:      %s\n", e.Email)
	fmt.Fprintf(out, "Phone:      %s\n", e.Phone)
	fmt.Fprintf(out, "Position:   %s\n", e.Position)
	fmt.Fprintf(out, "Department: %s\n", e.Department)
	fmt.Fprintf(out, "Status:     %s\n", e.Status)
	printCustomFields(out, e.CustomFields)
	return nil
}

var employeesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an employee",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		input, err := employeeInputFromFlags(cmd, app, erp.EmployeeInput{})
		if err != nil {
			return err
		}

		id, err := app.API.CreateEmployee(cmd.Context(), input)
		if err != nil {
			return err
		}

		fmt.Printf("Created employee %s\n", id)
		return nil
	},
}

var employeesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		// Start from the current record so unset flags keep their value.
		current, err := app.API.GetEmployee(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		base := erp.EmployeeInput{
			FirstName:    current.FirstName,
			LastName:     current.LastName,
			Email:        current.Email,
			Phone:        current.Phone,
			Position:     current.Position,
			Department:   current.Department,
			CustomFields: current.CustomFields,
		}

		input, err := employeeInputFromFlags(cmd, app, base)
		if err != nil {
			return err
		}

		if err := app.API.UpdateEmployee(cmd.Context(), args[0], input); err != nil {
			return err
		}

		fmt.Printf("Updated employee %s\n", args[0])
		return nil
	},
}

var employeesStatusCmd = &cobra.Command{
	Use:   "status <id> <active|inactive>",
	Short: "Activate or deactivate an employee",
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

		ok, err := app.confirmDeactivation("employee "+args[0], status)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}

		if err := app.API.ChangeEmployeeStatus(cmd.Context(), args[0], status); err != nil {
			return err
		}

		fmt.Printf("Employee %s is now %s\n", args[0], status)
		return nil
	},
}

func employeeInputFromFlags(cmd *cobra.Command, app *App, input erp.EmployeeInput) (erp.EmployeeInput, error) {
	if v, _ := cmd.Flags().GetString("first-name"); v != "" {
		input.FirstName = v
	}
	if v, _ := cmd.Flags().GetString("last-name"); v != "" {
		input.LastName = v
	}
	if v, _ := cmd.Flags().GetString("email"); v != "" {
		input.Email = v
	}
	if v, _ := cmd.Flags().GetString("phone"); v != "" {
		input.Phone = v
	}
	if v, _ := cmd.Flags().GetString("position"); v != "" {
		input.Position = v
	}
	if v, _ := cmd.Flags().GetString("department"); v != "" {
		input.Department = v
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

	var promptErr error
	if input.FirstName == "" && app.canPrompt() {
		input.FirstName, promptErr = tui.PromptForString(tui.Prompt{Message: "First name", Required: true})
		if promptErr != nil {
			return input, promptErr
		}
	}
	if input.LastName == "" && app.canPrompt() {
		input.LastName, promptErr = tui.PromptForString(tui.Prompt{Message: "Last name", Required: true})
		if promptErr != nil {
			return input, promptErr
		}
	}
	if input.FirstName == "" || input.LastName == "" {
		return input, fmt.Errorf("--first-name and --last-name are required")
	}
	return input, nil
}

// parseFieldFlags turns repeated --field key=value flags into a custom
// fields map.
func parseFieldFlags(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]any, len(pairs))
	for _, p := range pairs {
		key, value, found := strings.Cut(p, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --field %q, expected key=value", p)
		}
		out[key] = value
	}
	return out, nil
}

func parseStatus(s string) (erp.Status, error) {
	switch erp.Status(s) {
	case erp.StatusActive, erp.StatusInactive:
		return erp.Status(s), nil
	default:
		return "", fmt.Errorf("invalid status %q, expected active or inactive", s)
	}
}

func printCustomFields(out io.Writer, fields map[string]any) {
	if len(fields) == 0 {
		return
	}
	fmt.Fprintln(out, "Custom fields:")
	for k, v := range fields {
		fmt.Fprintf(out, "  %s: %v\n", k, v)
	}
}

func addEmployeeInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("first-name", "", "First name")
	cmd.Flags().String("last-name", "", "Last name")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("position", "", "Job position")
	cmd.Flags().String("department", "", "Department")
	cmd.Flags().StringArray("field", nil, "Custom field as key=value (repeatable)")
}

func init() {
	employeesCmd.AddCommand(employeesListCmd)
	employeesCmd.AddCommand(employeesShowCmd)
	employeesCmd.AddCommand(employeesCreateCmd)
	employeesCmd.AddCommand(employeesUpdateCmd)
	employeesCmd.AddCommand(employeesStatusCmd)

	employeesListCmd.Flags().Bool("interactive", false, "Browse the list interactively")
	addEmployeeInputFlags(employeesCreateCmd)
	addEmployeeInputFlags(employeesUpdateCmd)

	rootCmd.AddCommand(employeesCmd)
}
