package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/magcell/config"
	"github.com/katalvlaran/magcell/tags"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigShowCommand(ctx))
	configCmd.AddCommand(newConfigKeysCommand())
	configCmd.AddCommand(newConfigParseCommand())

	return configCmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var data []byte
			switch config.Format(strings.ToLower(strings.TrimSpace(format))) {
			case config.FormatYAML:
				data, err = yaml.Marshal(cfg)
			case config.FormatTOML:
				data, err = toml.Marshal(cfg)
			default:
				return fmt.Errorf("config show: format %q: %w", format, config.ErrUnknownFormat)
			}
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", string(config.FormatYAML), "Output format (yaml or toml)")
	return cmd
}

func newConfigKeysCommand() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List keys accepted by --set and any extra tag catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(catalog))
			for k := range catalog {
				keys = append(keys, k)
			}
			slices.Sort(keys)

			rows := make([][]string, 0, len(keys))
			for _, k := range keys {
				spec := catalog[k]
				rows = append(rows, []string{k, spec.Kind.String(), describeSpec(spec)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Key", "Kind", "Allowed"},
				rows,
				nil,
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML tag catalog merged with the built-in keys")
	return cmd
}

func newConfigParseCommand() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "parse <key> <value>",
		Short: "Check a value against its key and print the typed result",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			v, err := catalog.Parse(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %v\n", args[0], v.Kind, v.Any())
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML tag catalog merged with the built-in keys")
	return cmd
}

// loadCatalog returns the built-in keys, merged with the catalog at path
// when one is given.
func loadCatalog(path string) (tags.Catalog, error) {
	builtin := config.Catalog()
	path = strings.TrimSpace(path)
	if path == "" {
		return builtin, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	extra, err := tags.LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return builtin.Merge(extra)
}

func describeSpec(spec tags.Spec) string {
	if spec.Kind == tags.KindChoice {
		return strings.Join(spec.Choices, ", ")
	}
	return spec.Constraint.String()
}
