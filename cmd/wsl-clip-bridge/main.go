// wsl-clip-bridge: xclip-compatible clipboard bridge backed by a disk cache.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BarrerosLeo/wsl-clip-bridge/internal/bridge"
	"github.com/BarrerosLeo/wsl-clip-bridge/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	logging.SetupFromEnv()

	code := 0
	root := newRootCmd(&code)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(code)
}

// newRootCmd builds the xclip-compatible root command. The transaction's
// exit code is written through code so main can pass it to os.Exit after
// Execute returns.
func newRootCmd(code *int) *cobra.Command {
	root := &cobra.Command{
		Use:   "wsl-clip-bridge",
		Short: "xclip-compatible clipboard bridge backed by a disk cache",
		Long: `wsl-clip-bridge emulates the xclip command surface but persists
clipboard payloads (text or a single image) to disk with a TTL, so that
producers and consumers in different execution contexts (WSL distros,
containers, SSH sessions on one host) can exchange clipboard content
without a display server.

Producer side (input mode, the default):
  wsl-clip-bridge -t image/png -i screenshot.png
  echo "hello" | wsl-clip-bridge

Consumer side (output mode):
  wsl-clip-bridge -o -t TARGETS
  wsl-clip-bridge -o -t image/png > out.png

Cached payloads expire after ttl_secs (default 300, WSL_CLIP_BRIDGE_TTL_SECS
overrides, 24h ceiling). Options live in the config file written on first
use; see it for the full reference.`,
		SilenceUsage: true,
		// The xclip surface uses single-dash long flags (-selection) and
		// optional flag values (-i [path]); pflag cannot tokenize those,
		// so the raw args go through parseArgs instead. ArbitraryArgs
		// keeps cobra from treating the leftover tokens as a subcommand
		// lookup that would fail with "unknown command".
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		Run: func(_ *cobra.Command, argv []string) {
			*code = run(parseArgs(argv))
		},
	}
	root.AddCommand(newVersionCmd())
	return root
}

// run dispatches one clipboard transaction and returns the exit code.
func run(args Args) int {
	b := bridge.New()

	if args.Output {
		return b.Output(args.MIME)
	}

	mime := args.MIME
	if mime == "" {
		mime = "text/plain"
	}
	return b.Input(mime, args.InputFile)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("wsl-clip-bridge %s\n", Version)
		},
	}
}
