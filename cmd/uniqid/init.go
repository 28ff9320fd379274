package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/uniqid/internal/config"
	"github.com/vango-dev/uniqid/internal/errors"
)

func initCmd() *cobra.Command {
	var (
		dir    string
		asYAML bool
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write uniqid.json (or uniqid.yaml with --yaml) with default values.

Examples:
  uniqid init
  uniqid init --yaml --dir ./site`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.Exists(dir) && !force {
				return errors.New("E300").
					WithDetail("A configuration file already exists in " + dir).
					WithSuggestion("Pass --force to overwrite it")
			}

			name := config.ConfigFileName
			if asYAML {
				name = "uniqid.yaml"
			}
			path := filepath.Join(dir, name)
			if err := config.New().SaveTo(path); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory to write into")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Write YAML instead of JSON")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
