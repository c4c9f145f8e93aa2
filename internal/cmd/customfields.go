package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumera-core/lumera-cli/internal/erp"
	"github.com/lumera-core/lumera-cli/internal/tui"
)

var fieldsCmd = &cobra.Command{
	Use:     "custom-fields",
	Aliases: []string{"fields"},
	Short:   "Manage custom field definitions",
	Long: `Manage custom field definitions of the active company.

Custom fields extend the employees, clients, and products entities with
typed extra attributes. Values are passed on create/update via the
--field key=value flag of the entity commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var fieldsListCmd = &cobra.Command{
	Use:   "list <entity>",
	Short: "List field definitions of an entity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		entity, err := parseEntity(args[0])
		if err != nil {
			return err
		}

		fields, err := app.API.ListCustomFields(cmd.Context(), entity)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(fields))
		for _, f := range fields {
			required := ""
			if f.Required {
				required = "yes"
			}
			options := make([]string, 0, len(f.Options))
			for _, o := range f.Options {
				options = append(options, o.Value)
			}
			rows = append(rows, []string{
				f.ID, f.FieldKey, f.Label, string(f.FieldType), required, strings.Join(options, ", "),
			})
		}
		tui.RenderTable(cmd.OutOrStdout(),
			[]string{"ID", "KEY", "LABEL", "TYPE", "REQUIRED", "OPTIONS"}, rows)
		return nil
	},
}

var fieldsCreateCmd = &cobra.Command{
	Use:   "create <entity>",
	Short: "Create a field definition on an entity",
	Long: `Create a custom field definition on an entity.

Examples:
  lumera custom-fields create employees --key badge_id --label "Badge ID" --type text --required
  lumera custom-fields create products --key size --label Size --type select --option S --option M --option L`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireCompany(); err != nil {
			return err
		}

		entity, err := parseEntity(args[0])
		if err != nil {
			return err
		}

		key, _ := cmd.Flags().GetString("key")
		label, _ := cmd.Flags().GetString("label")
		fieldType, _ := cmd.Flags().GetString("type")
		required, _ := cmd.Flags().GetBool("required")
		options, _ := cmd.Flags().GetStringArray("option")

		if key == "" || label == "" {
			return fmt.Errorf("--key and --label are required")
		}

		ft := erp.CustomFieldType(fieldType)
		switch ft {
		case erp.FieldText, erp.FieldNumber, erp.FieldDate, erp.FieldBoolean, erp.FieldSelect:
		default:
			return fmt.Errorf("invalid --type %q, expected text, number, date, boolean, or select", fieldType)
		}

		if ft == erp.FieldSelect && len(options) == 0 {
			return fmt.Errorf("select fields need at least one --option")
		}
		if ft != erp.FieldSelect && len(options) > 0 {
			return fmt.Errorf("--option is only valid for select fields")
		}

		input := erp.CustomFieldInput{
			Entity:    entity,
			FieldKey:  key,
			Label:     label,
			FieldType: ft,
			Required:  required,
		}
		for _, o := range options {
			input.Options = append(input.Options, erp.CustomFieldOption{Label: o, Value: o})
		}

		if err := app.API.CreateCustomField(cmd.Context(), input); err != nil {
			return err
		}

		fmt.Printf("Created field %s on %s\n", key, entity)
		return nil
	},
}

func parseEntity(s string) (string, error) {
	switch s {
	case "employees", "clients", "products":
		return s, nil
	default:
		return "", fmt.Errorf("invalid entity %q, expected employees, clients, or products", s)
	}
}

func init() {
	fieldsCmd.AddCommand(fieldsListCmd)
	fieldsCmd.AddCommand(fieldsCreateCmd)

	fieldsCreateCmd.Flags().String("key", "", "Field key, e.g. badge_id")
	fieldsCreateCmd.Flags().String("label", "", "Display label")
	fieldsCreateCmd.Flags().String("type", "text", "Field type: text, number, date, boolean, select")
	fieldsCreateCmd.Flags().Bool("required", false, "Mark the field as required")
	fieldsCreateCmd.Flags().StringArray("option", nil, "Option of a select field (repeatable)")

	rootCmd.AddCommand(fieldsCmd)
}
