package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	httpAdapter "github.com/bft-labs/hdrs/internal/adapters/http"
	logAdapter "github.com/bft-labs/hdrs/internal/adapters/log"
	"github.com/bft-labs/hdrs/internal/app"
	"github.com/bft-labs/hdrs/internal/cliconfig"
	"github.com/bft-labs/hdrs/internal/domain"
	"github.com/bft-labs/hdrs/internal/ports"
)

const longHelp = `Send a single GET or POST request and print the response status line and headers.

The body is never printed. Configuration is read from the config file,
then HDRS_* environment variables, then flags; later sources win.`

var exampleUsage = strings.TrimSpace(`
  hdrs https://example.com
  hdrs -m post https://httpbin.org/post
  HDRS_TIMEOUT=5s hdrs --log-level debug https://example.com
`)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// transportFactory builds the transport collaborator for a validated config.
type transportFactory func(cfg cliconfig.Config, logger ports.Logger) ports.Transport

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

func newHTTPTransport(cfg cliconfig.Config, logger ports.Logger) ports.Transport {
	client := httpAdapter.NewClient(httpAdapter.ClientConfig{
		Timeout: cfg.Timeout,
		Proxy:   httpAdapter.ProxyConfig(cfg.Proxy),
	})
	ua := cfg.UserAgent
	if ua == "" {
		ua = "hdrs/" + getVersion()
	}
	return httpAdapter.NewTransport(client, logger, ua)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, newHTTPTransport)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, newTransport transportFactory) int {
	log := logAdapter.NewConsole(stderr, zerolog.WarnLevel)

	root := newRootCmd(stdout, stderr, newTransport, &log)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	if domain.IsUsage(err) {
		fmt.Fprintf(stderr, "Error: %v\n\n%s", err, root.UsageString())
		return exitUsage
	}
	if log.GetLevel() > zerolog.ErrorLevel {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	} else {
		log.Error().Err(err).Msg("hdrs")
	}
	return exitFailure
}

func newRootCmd(stdout, stderr io.Writer, newTransport transportFactory, log *zerolog.Logger) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "hdrs [flags] URL",
		Short:         "Show the response status line and headers for a URL",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       getVersion(),
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return domain.NewUsageError("expected exactly one URL argument, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.URL = args[0]

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			level, err := cfg.Level()
			if err != nil {
				return err
			}
			*log = log.Level(level)
			log.Debug().Interface("config", cfg).Str("config_file", cfgFile).Msg("configuration")

			inv, err := cfg.Invocation()
			if err != nil {
				return err
			}

			logger := logAdapter.NewZerologAdapterWithLogger(*log)
			d := app.NewDispatcher(newTransport(cfg, logger), cmd.OutOrStdout(), logger)
			return d.Dispatch(cmd.Context(), inv)
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return domain.NewUsageError("%v", err)
	})

	root.Flags().VarP(cliconfig.NewMethodValue(&cfg.Method), "method", "m", "HTTP method to use")
	root.Flags().BoolP("version", "V", false, "print version and exit")
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.hdrs/config.toml)")
	root.Flags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "HTTP timeout (0 uses the transport default)")
	root.Flags().StringVar(&cfg.UserAgent, "user-agent", cfg.UserAgent, "User-Agent header (default hdrs/<version>)")
	root.Flags().StringVar(&cfg.Proxy, "proxy", cfg.Proxy, "proxy URL for http and https targets (default from HTTP_PROXY/HTTPS_PROXY)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	return root
}
