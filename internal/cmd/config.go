package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lumera-core/lumera-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit the CLI configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "api_url:         %s\n", cfg.APIURL)
		fmt.Fprintf(out, "timeout_seconds: %d\n", cfg.TimeoutSeconds)
		fmt.Fprintf(out, "log_level:       %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "log_format:      %s\n", cfg.LogFormat)
		fmt.Fprintf(out, "no_input:        %t\n", cfg.NoInput)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		switch args[0] {
		case "api_url":
			fmt.Println(cfg.APIURL)
		case "timeout_seconds":
			fmt.Println(cfg.TimeoutSeconds)
		case "log_level":
			fmt.Println(cfg.LogLevel)
		case "log_format":
			fmt.Println(cfg.LogFormat)
		case "no_input":
			fmt.Println(cfg.NoInput)
		default:
			return fmt.Errorf("unknown key %q", args[0])
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		key, value := args[0], args[1]
		switch key {
		case "api_url":
			cfg.APIURL = value
		case "timeout_seconds":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return fmt.Errorf("timeout_seconds must be a positive integer")
			}
			cfg.TimeoutSeconds = n
		case "log_level":
			cfg.LogLevel = value
		case "log_format":
			cfg.LogFormat = value
		case "no_input":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("no_input must be true or false")
			}
			cfg.NoInput = b
		default:
			return fmt.Errorf("unknown key %q", key)
		}

		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("Set %s\n", key)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configViewCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(configCmd)
}
