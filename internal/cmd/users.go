package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumera-core/lumera-cli/internal/erp"
	"github.com/lumera-core/lumera-cli/internal/tui"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user memberships of the active company",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users of the active company",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		users, err := app.API.ListUsers(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(users))
		for _, u := range users {
			rows = append(rows, []string{u.CompanyUserID, u.Name, u.Email, u.RoleName, string(u.Status)})
		}
		tui.RenderTable(cmd.OutOrStdout(), []string{"MEMBERSHIP", "NAME", "EMAIL", "ROLE", "STATUS"}, rows)
		return nil
	},
}

var usersCreateCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"invite"},
	Short:   "Create a user inside the active company",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		roleID, _ := cmd.Flags().GetString("role")

		if roleID == "" && app.canPrompt() {
			roles, err := app.API.ListRoles(cmd.Context())
			if err != nil {
				return err
			}
			options := make([]tui.SelectOption, 0, len(roles))
			for _, r := range roles {
				options = append(options, tui.SelectOption{Label: r.Name, Value: r.ID})
			}
			if roleID, err = tui.PromptForSelect("Role for the new user", options); err != nil {
				return err
			}
		}
		if name == "" || email == "" || password == "" || roleID == "" {
			return fmt.Errorf("--name, --email, --password, and --role are required")
		}

		input := erp.UserInput{Name: name, Email: email, Password: password, RoleID: roleID}
		if err := app.API.CreateUser(cmd.Context(), input); err != nil {
			return err
		}

		fmt.Printf("Invited %s\n", email)
		return nil
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <user-id>",
	Short: "Update a user's name or email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		if name == "" && email == "" {
			return fmt.Errorf("nothing to update, pass --name or --email")
		}

		if err := app.API.UpdateUser(cmd.Context(), args[0], name, email); err != nil {
			return err
		}

		fmt.Printf("Updated user %s\n", args[0])
		return nil
	},
}

var usersStatusCmd = &cobra.Command{
	Use:   "status <membership-id> <active|inactive>",
	Short: "Activate or deactivate a membership",
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

		ok, err := app.confirmDeactivation("membership "+args[0], status)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}

		if err := app.API.ChangeUserStatus(cmd.Context(), args[0], status); err != nil {
			return err
		}

		fmt.Printf("Membership %s is now %s\n", args[0], status)
		return nil
	},
}

func init() {
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersCreateCmd)
	usersCmd.AddCommand(usersUpdateCmd)
	usersCmd.AddCommand(usersStatusCmd)

	usersCreateCmd.Flags().String("name", "", "Full name")
	usersCreateCmd.Flags().String("email", "", "Email address")
	usersCreateCmd.Flags().String("password", "", "Initial password")
	usersCreateCmd.Flags().String("role", "", "Role ID to assign")

	usersUpdateCmd.Flags().String("name", "", "New full name")
	usersUpdateCmd.Flags().String("email", "", "New email address")

	rootCmd.AddCommand(usersCmd)
}
