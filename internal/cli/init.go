package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/contacts/internal/paths"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration and phone book file",
		Long: "Create the configuration directory with a default config.yaml, then\n" +
			"create the phone book file holding an empty list if it does not exist.",
		Args: cobra.NoArgs,
		RunE: a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	// The data file is pinned in config.yaml only when chosen explicitly;
	// otherwise later runs keep using the working directory.
	cfg := a.cfg
	if a.flags.file == "" {
		cfg.File = ""
	}
	configPath := filepath.Join(configDir, configFileExt)
	if err := writeConfigIfMissing(configPath, cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	b, err := a.openBook(cmd, true)
	if err != nil {
		return fmt.Errorf("initialize phone book: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Phone book initialized at %s\n", b.Path())
	return nil
}

// writeConfigIfMissing creates config.yaml holding cfg if the file does not
// exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(path string, cfg types.Config) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
