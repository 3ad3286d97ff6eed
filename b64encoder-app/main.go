package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/compose-network/b64encoder/b64encoder-app/config"
	"github.com/compose-network/b64encoder/log"
	"github.com/compose-network/b64encoder/x/fileio"
)

const description = `b64encoder converts text files written in a legacy Cyrillic code page
to UTF-8 wrapped in Base64, and back.

Encoding converts the input from the chosen code page to UTF-8 and writes
the Base64 text of the result. Before it is written, the encoded text is
scanned up to its first line break or tab: a line break becomes the ASCII
bell character (\a), a tab becomes four spaces, and scanning stops there.
Decoding reverses the Base64 framing, converts UTF-8 back to the code page
and turns every bell character into a newline.

Supported encodings:
    cp1251 - Cyrillic Windows-1251
    koi8r  - Cyrillic KOI8-R
    cp866  - Cyrillic DOS (IBM866)`

const examples = `  b64encoder encode example.html encoded.txt cp866
  b64encoder decode encoded.txt decoded.txt cp866`

var errMissingCommand = errors.New("missing command")

type cli struct {
	files *fileio.Store
	cfg   *config.Config
	app   *App
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func execute() error {
	return newRootCmd(fileio.NewOSStore()).Execute()
}

func newRootCmd(files *fileio.Store) *cobra.Command {
	c := &cli{files: files}

	rootCmd := &cobra.Command{
		Use:               "b64encoder",
		Short:             "Encode legacy Cyrillic text files to Base64 and back",
		Long:              description,
		Example:           examples,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Help()
			return errMissingCommand
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-pretty", false, "enable pretty logging")
	rootCmd.PersistentFlags().String("line-endings", "", "line break bytes to normalize (auto, crlf, lf, lf-fallback)")

	rootCmd.AddCommand(
		c.transformCmd("encode", "Encode the input file and save the result to the output file"),
		c.transformCmd("decode", "Decode the input file and save the result to the output file"),
		c.detectCmd(),
		c.encodingsCmd(),
		c.configCmd(),
		versionCmd(),
	)

	return rootCmd
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	// Arguments are valid by now; failures past this point are not usage errors.
	cmd.SilenceUsage = true

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := log.NewWithWriter(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Pretty)

	app, err := NewApp(cfg, c.files, logger.Logger)
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.app = app
	return nil
}

func (c *cli) transformCmd(op, short string) *cobra.Command {
	return &cobra.Command{
		Use:   op + " <input_file> <output_file> <encoding>",
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.app.Run(op, args[0], args[1], args[2])
		},
	}
}

func (c *cli) detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <input_file>",
		Short: "Guess which supported encoding the input file is written in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detection, err := c.app.Detect(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d%%\n", detection.Name, detection.Charset, detection.Confidence)
			return nil
		},
	}
}

func (c *cli) encodingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encodings",
		Short: "List supported encodings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, info := range c.app.Encodings() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s <-> %s\n", info.Name, info.Pair.Legacy, info.Pair.Unicode)
			}
		},
	}
}

func (c *cli) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(c.cfg); err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			return enc.Close()
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "b64encoder\n")
			fmt.Fprintf(out, "Version:    %s\n", Version)
			fmt.Fprintf(out, "Build Time: %s\n", BuildTime)
			fmt.Fprintf(out, "Git Commit: %s\n", GitCommit)
			fmt.Fprintf(out, "Go Version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flag("log-level").Changed {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flag("log-pretty").Changed {
		cfg.Log.Pretty, _ = cmd.Flags().GetBool("log-pretty")
	}
	if cmd.Flag("line-endings").Changed {
		cfg.Normalize.LineEndings, _ = cmd.Flags().GetString("line-endings")
	}
}
