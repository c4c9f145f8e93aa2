package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumera-core/lumera-cli/internal/tui"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage your Lumera session",
	Long: `Manage your session with the Lumera platform.

The session (token, account, active company) is persisted under
~/.lumera/session and attached automatically to every request.

Examples:
  lumera auth register --name "Ada" --email ada@example.com
  lumera auth login --email ada@example.com
  lumera auth status
  lumera auth context
  lumera auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and start a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if name == "" && app.canPrompt() {
			if name, err = tui.PromptForString(tui.Prompt{Message: "Full name", Required: true}); err != nil {
				return err
			}
		}
		if email == "" && app.canPrompt() {
			if email, err = tui.PromptForString(tui.Prompt{Message: "Email", Required: true}); err != nil {
				return err
			}
		}
		if password == "" && app.canPrompt() {
			if password, err = tui.PromptForPassword("Password"); err != nil {
				return err
			}
		}
		if name == "" || email == "" || password == "" {
			return fmt.Errorf("--name, --email, and --password are required")
		}

		if err := app.Auth.Register(cmd.Context(), name, email, password); err != nil {
			return err
		}

		fmt.Printf("Registered and logged in as %s\n", email)
		printNextStep(app)
		return nil
	},
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login and start a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" && app.canPrompt() {
			if email, err = tui.PromptForString(tui.Prompt{Message: "Email", Required: true}); err != nil {
				return err
			}
		}
		if password == "" && app.canPrompt() {
			if password, err = tui.PromptForPassword("Password"); err != nil {
				return err
			}
		}
		if email == "" || password == "" {
			return fmt.Errorf("--email and --password are required")
		}

		if err := app.Auth.Login(cmd.Context(), email, password); err != nil {
			return err
		}

		fmt.Printf("Logged in as %s\n", email)
		printNextStep(app)
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session and clear persisted credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}

		snap := app.Auth.Snapshot()
		if !snap.IsAuthenticated {
			fmt.Println("Not logged in.")
			return nil
		}

		app.Auth.Logout()
		fmt.Println("Logged out.")
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}

		snap := app.Auth.Snapshot()
		if !snap.IsAuthenticated {
			fmt.Println("Not logged in.")
			fmt.Println("Use 'lumera auth login' to start a session.")
			return nil
		}

		fmt.Printf("Logged in as %s (%s)\n", snap.User.Name, snap.User.Email)
		if snap.ActiveCompany != nil {
			fmt.Printf("Active company: %s (%s)\n", snap.ActiveCompany.CompanyName, snap.ActiveCompany.CompanyID)
		} else {
			fmt.Println("No active company selected.")
		}
		return nil
	},
}

var authContextCmd = &cobra.Command{
	Use:   "context",
	Short: "Refresh and show company memberships",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuthenticated(); err != nil {
			return err
		}

		if err := app.Auth.RefreshContext(cmd.Context()); err != nil {
			return err
		}

		snap := app.Auth.Snapshot()
		if !snap.HasCompany {
			fmt.Println("No company memberships.")
			fmt.Println("Use 'lumera company create' to onboard one.")
			return nil
		}

		rows := make([][]string, 0, len(snap.Companies))
		for _, c := range snap.Companies {
			active := ""
			if snap.ActiveCompany != nil && snap.ActiveCompany.CompanyID == c.CompanyID {
				active = "*"
			}
			rows = append(rows, []string{c.CompanyID, c.CompanyName, c.RoleName, c.Status, active})
		}
		tui.RenderTable(cmd.OutOrStdout(), []string{"ID", "NAME", "ROLE", "STATUS", "ACTIVE"}, rows)
		return nil
	},
}

func printNextStep(app *App) {
	if app.Auth.Snapshot().HasCompany {
		return
	}
	fmt.Println()
	fmt.Println("You have no company yet. Use 'lumera company create' to onboard one.")
}

func init() {
	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authContextCmd)

	authRegisterCmd.Flags().String("name", "", "Full name")
	authRegisterCmd.Flags().String("email", "", "Email address")
	authRegisterCmd.Flags().String("password", "", "Password")

	authLoginCmd.Flags().String("email", "", "Email address")
	authLoginCmd.Flags().String("password", "", "Password")

	rootCmd.AddCommand(authCmd)
}
