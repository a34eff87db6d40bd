package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jimmyjordanSWE/logorder/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a LogOrder configuration file without running a scan.

Checks:
  - YAML syntax
  - Timestamp pattern validity (must be anchored, with a capture group)
  - Layout presence
  - Webhook definitions`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", configPath)

	// Load and validate config
	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// Report what we found
	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Timestamp pattern: %s\n", cfg.TimestampFormat.Pattern)
	fmt.Printf("  Timestamp layout:  %s\n", cfg.TimestampFormat.Layout)
	fmt.Printf("  Max line bytes:    %d\n", cfg.MaxLineBytes)

	if len(cfg.Webhooks) > 0 {
		fmt.Printf("\nWebhooks:\n")
		for i, wh := range cfg.Webhooks {
			name := wh.Name
			if name == "" {
				name = wh.URL
			}
			fmt.Printf("  %d. %s (trigger: %s)\n", i+1, name, wh.Trigger)
		}
	}

	return nil
}
