package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumera-core/lumera-cli/internal/erp"
	"github.com/lumera-core/lumera-cli/internal/tui"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Manage roles of the active company",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var rolesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List roles",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		roles, err := app.API.ListRoles(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(roles))
		for _, r := range roles {
			rows = append(rows, []string{r.ID, r.Name, r.Description})
		}
		tui.RenderTable(cmd.OutOrStdout(), []string{"ID", "NAME", "DESCRIPTION"}, rows)
		return nil
	},
}

var rolesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a role",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		description, _ := cmd.Flags().GetString("description")

		if name == "" && app.canPrompt() {
			if name, err = tui.PromptForString(tui.Prompt{Message: "Role name", Required: true}); err != nil {
				return err
			}
		}
		if name == "" {
			return fmt.Errorf("--name is required")
		}

		input := erp.RoleInput{Name: name, Description: description}
		if err := app.API.CreateRole(cmd.Context(), input); err != nil {
			return err
		}

		fmt.Printf("Created role %s\n", name)
		return nil
	},
}

var rolesAssignCmd = &cobra.Command{
	Use:   "assign <membership-id> <role-id>",
	Short: "Assign a role to a company membership",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		if err := app.API.AssignRole(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}

		fmt.Printf("Assigned role %s to membership %s\n", args[1], args[0])
		return nil
	},
}

var rolesPermissionsCmd = &cobra.Command{
	Use:   "permissions <role-id>",
	Short: "List permissions granted to a role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		permissions, err := app.API.RolePermissions(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(permissions))
		for _, p := range permissions {
			rows = append(rows, []string{p.ID, p.Key})
		}
		tui.RenderTable(cmd.OutOrStdout(), []string{"ID", "KEY"}, rows)
		return nil
	},
}

func init() {
	rolesCmd.AddCommand(rolesListCmd)
	rolesCmd.AddCommand(rolesCreateCmd)
	rolesCmd.AddCommand(rolesAssignCmd)
	rolesCmd.AddCommand(rolesPermissionsCmd)

	rolesCreateCmd.Flags().String("name", "", "Role name")
	rolesCreateCmd.Flags().String("description", "", "Role description")

	rootCmd.AddCommand(rolesCmd)
}
