package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsvensson/swatch"
	"github.com/jsvensson/swatch/internal/color"
	"github.com/jsvensson/swatch/internal/config"
	"github.com/jsvensson/swatch/internal/render"
	"github.com/jsvensson/swatch/internal/server"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var (
	flagConfig  string
	flagAddress string
	flagVerbose int
	flagPNG     string
	flagSize    int
	flagJSON    bool
	flagCheck   bool
	version     = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:           "swatch",
	Short:         "Convert colour codes between notations and render swatches",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve swatch pages and images over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var convertCmd = &cobra.Command{
	Use:   "convert <notation> <code>",
	Short: "Convert a colour code to every notation",
	Long: "Convert a colour code to every notation. Supported notations: hex, rgb, rgba, hsl, hsla, cmyk.\n" +
		"Example: swatch convert hsl 343,76,68",
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print a random opaque colour as hex",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), color.RandomHex())
	},
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format swatch HCL config files",
	Long:  "Format one or more HCL config files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "path to HCL config file")
	serveCmd.Flags().StringVar(&flagAddress, "address", "", "listen address (overrides server.address)")
	serveCmd.Flags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (can be repeated)")
	convertCmd.Flags().StringVar(&flagPNG, "png", "", "also write the swatch as a PNG file")
	convertCmd.Flags().IntVar(&flagSize, "size", 1, "PNG swatch size in pixels")
	convertCmd.Flags().BoolVar(&flagJSON, "json", false, "print the conversion as JSON")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	loader := config.NewLoader()
	if err := loader.BindFlag("server.address", cmd.Flags().Lookup("address")); err != nil {
		return err
	}
	cfg, err := loader.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var logPath *string
	if cfg.Log.File != "" {
		logPath = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity+flagVerbose, logPath)

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Start(ctx)
}

func runConvert(cmd *cobra.Command, args []string) error {
	conv, err := swatch.Convert(args[0], args[1])
	if err != nil {
		return err
	}

	if flagPNG != "" {
		data, err := render.PNG(conv.Color, flagSize)
		if err != nil {
			return err
		}
		if err := os.WriteFile(flagPNG, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", flagPNG, err)
		}
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(conv)
	}
	for _, n := range color.Notations {
		fmt.Fprintf(out, "%-5s %s\n", n, conv.Color.CSS(n))
	}
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		formatted, err := config.Format(data, path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if string(formatted) == string(data) {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, formatted, 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
