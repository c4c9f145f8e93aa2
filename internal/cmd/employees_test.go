package cmd

import (
	"testing"
)

// TestEmployeesSubcommands tests that all employee subcommands are registered
func TestEmployeesSubcommands(t *testing.T) {
	subcommands := map[string]bool{
		"list":   false,
		"show":   false,
		"create": false,
		"update": false,
		"status": false,
	}

	for _, cmd := range employeesCmd.Commands() {
		if _, exists := subcommands[cmd.Name()]; exists {
			subcommands[cmd.Name()] = true
		}
	}

	for name, found := range subcommands {
		if !found {
			t.Errorf("subcommand '%s' not found on employees command", name)
		}
	}
}

// TestEmployeesCreateFlags tests that employees create has the input flags
func TestEmployeesCreateFlags(t *testing.T) {
	for _, name := range []string{"first-name", "last-name", "email", "phone", "position", "department", "field"} {
		if employeesCreateCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag '%s' not found on employees create command", name)
		}
	}
}

// TestInventoryAdjustFlags tests the adjust command flags
func TestInventoryAdjustFlags(t *testing.T) {
	for _, name := range []string{"product", "quantity", "type", "notes"} {
		if inventoryAdjustCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag '%s' not found on inventory adjust command", name)
		}
	}
}
