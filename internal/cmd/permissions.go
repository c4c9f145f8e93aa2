package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumera-core/lumera-cli/internal/tui"
)

var permissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "Manage permission keys and role grants",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var permissionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List permission keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		permissions, err := app.API.ListPermissions(cmd.Context())
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

var permissionsCreateCmd = &cobra.Command{
	Use:   "create <key>",
	Short: "Create a permission key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		permission, err := app.API.CreatePermission(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Created permission %s (%s)\n", permission.Key, permission.ID)
		return nil
	},
}

var permissionsAssignCmd = &cobra.Command{
	Use:   "assign <role-id> <permission-id>",
	Short: "Grant a permission to a role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		if err := app.API.AssignPermission(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}

		fmt.Printf("Granted permission %s to role %s\n", args[1], args[0])
		return nil
	},
}

func init() {
	permissionsCmd.AddCommand(permissionsListCmd)
	permissionsCmd.AddCommand(permissionsCreateCmd)
	permissionsCmd.AddCommand(permissionsAssignCmd)

	rootCmd.AddCommand(permissionsCmd)
}
