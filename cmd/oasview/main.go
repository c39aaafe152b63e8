package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oasview/oasview/config"
	"github.com/oasview/oasview/core"
	"github.com/oasview/oasview/redoc"
	"github.com/oasview/oasview/scalar"
	"github.com/oasview/oasview/server"
	"github.com/oasview/oasview/site"
	"github.com/oasview/oasview/swagger"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:          "oasview",
		Short:        "Static documentation sites with an OpenAPI-driven API reference",
		Version:      Version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringP("root", "r", "", "site root (defaults to the nearest directory containing oasview.yaml)")

	rootCmd.AddCommand(startCmd(), buildCmd(), generateCmd(), validateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func startCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Generate the API reference and serve the site with live reload",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			bundler, err := bundlerFor(cfg.Renderer)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, bundler).Run(ctx)
		},
	}
}

func buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Generate the API reference and assemble the production site",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			bundler, err := bundlerFor(cfg.Renderer)
			if err != nil {
				return err
			}
			if _, err := core.Generate(cmd.Context(), core.GenerateConfig{
				SpecPath:  cfg.SpecPath,
				OutputDir: cfg.OutputDir,
				Bundler:   bundler,
				Title:     cfg.Title,
			}); err != nil {
				return err
			}
			if err := site.Build(cfg); err != nil {
				return err
			}
			fmt.Printf("✅ built site at %s\n", cfg.BuildDir)
			return nil
		},
	}
}

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Validate the OpenAPI document and emit the viewer bundle",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			bundler, err := bundlerFor(cfg.Renderer)
			if err != nil {
				return err
			}
			out, err := core.Generate(cmd.Context(), core.GenerateConfig{
				SpecPath:  cfg.SpecPath,
				OutputDir: cfg.OutputDir,
				Bundler:   bundler,
				Title:     cfg.Title,
			})
			if err != nil {
				return err
			}
			fmt.Printf("✅ generated %s bundle at %s\n", bundler.Name(), out)
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [spec]",
		Short: "Validate an OpenAPI document without writing any output",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			specPath := ""
			if len(args) == 1 {
				specPath = args[0]
			} else {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				specPath = cfg.SpecPath
			}
			if _, err := core.Validate(cmd.Context(), specPath); err != nil {
				return err
			}
			fmt.Printf("✅ %s is a valid OpenAPI document\n", specPath)
			return nil
		},
	}
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	root, _ := cmd.Flags().GetString("root")
	if strings.TrimSpace(root) == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return config.Config{}, fmt.Errorf("determine working directory: %w", err)
		}
		if found, err := core.FindSiteRoot(cwd); err == nil {
			root = found
		} else {
			root = cwd
		}
	}
	return config.Load(root)
}

func bundlerFor(renderer string) (core.Bundler, error) {
	switch renderer {
	case "swagger", "":
		return swagger.Bundler{}, nil
	case "redoc":
		return redoc.Bundler{}, nil
	case "scalar":
		return scalar.Bundler{}, nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", renderer)
	}
}
