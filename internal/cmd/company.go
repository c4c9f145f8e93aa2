package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumera-core/lumera-cli/internal/tui"
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Manage company membership and the active tenant",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var companyCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a company and make it the active one",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuthenticated(); err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		if name == "" && app.canPrompt() {
			if name, err = tui.PromptForString(tui.Prompt{Message: "Company name", Required: true}); err != nil {
				return err
			}
		}
		if name == "" {
			return fmt.Errorf("--name is required")
		}

		company, err := app.API.CreateCompany(cmd.Context(), name)
		if err != nil {
			return err
		}

		// The platform attaches the creator and selects the new company;
		// refresh to pick up the membership.
		if err := app.Auth.RefreshContext(cmd.Context()); err != nil {
			return err
		}

		fmt.Printf("Created company %s (%s)\n", company.Name, company.ID)
		return nil
	},
}

var companyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your company memberships",
	RunE:  authContextCmd.RunE,
}

var companySwitchCmd = &cobra.Command{
	Use:   "switch [company-id]",
	Short: "Select the active company",
	Args:  cobra.MaximumNArgs(1),
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

		var companyID string
		if len(args) == 1 {
			companyID = args[0]
		} else if app.canPrompt() {
			snap := app.Auth.Snapshot()
			options := make([]tui.SelectOption, 0, len(snap.Companies))
			for _, c := range snap.Companies {
				options = append(options, tui.SelectOption{
					Label: fmt.Sprintf("%s (%s)", c.CompanyName, c.RoleName),
					Value: c.CompanyID,
				})
			}
			if companyID, err = tui.PromptForSelect("Select a company", options); err != nil {
				return err
			}
		}
		if companyID == "" {
			return fmt.Errorf("company id is required")
		}

		if err := app.Auth.SwitchCompany(companyID); err != nil {
			return err
		}

		active := app.Auth.Snapshot().ActiveCompany
		fmt.Printf("Switched to %s (%s)\n", active.CompanyName, active.CompanyID)
		return nil
	},
}

func init() {
	companyCmd.AddCommand(companyCreateCmd)
	companyCmd.AddCommand(companyListCmd)
	companyCmd.AddCommand(companySwitchCmd)

	companyCreateCmd.Flags().String("name", "", "Company name")

	rootCmd.AddCommand(companyCmd)
}
