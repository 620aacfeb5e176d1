package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/provide-io/padring/pkg/config"
	"github.com/provide-io/padring/pkg/logging"
	"github.com/provide-io/padring/pkg/profile"
)

const version = "0.1.0"

var (
	logLevel    string
	versionFlag bool
	rootCmd     *cobra.Command
)

func getBuildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "padring",
		Short: "Tablet hotkey state machine",
		Long: `padring routes tablet button presses through a filesystem-backed
state machine: each state directory declares what every button does and
which icons the device shows for it.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if versionFlag {
				fmt.Printf("padring %s\n", version)
				fmt.Printf("Built: %s\n", getBuildTimestamp())
				os.Exit(0)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "go <path>",
		Short: "Transition to a state (leading / is rooted at the profile root)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			sess, logger := openSession()
			if err := sess.Go(args[0]); err != nil {
				logger.Error("❌ Transition failed", "spec", args[0], "error", err)
				os.Exit(1)
			}
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "press <N>",
		Short: "Report a button press for index N",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			button, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: button index must be an integer, got %q\n", args[0])
				os.Exit(1)
			}
			sess, logger := openSession()
			if err := sess.Press(button); err != nil {
				logger.Error("❌ Press failed", "button", button, "error", err)
				os.Exit(1)
			}
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the current state's hotkey bindings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			sess, logger := openSession()
			state, bindings, err := sess.Bindings()
			if err != nil {
				logger.Error("❌ Listing failed", "error", err)
				os.Exit(1)
			}
			fmt.Printf("%s:\n", state)
			for _, b := range bindings {
				mode, size := entryModeSize(b.Path)
				fmt.Printf("%s %8d %s\n", mode, size, b.Name)
			}
		},
	})
}

// entryModeSize stats a binding entry for long-listing output.
func entryModeSize(path string) (string, int64) {
	info, err := os.Lstat(path)
	if err != nil {
		return "??????????", 0
	}
	return info.Mode().String(), info.Size()
}

// openSession loads configuration and opens the profile session, handling
// every fatal startup condition in one place.
func openSession() (*profile.Session, hclog.Logger) {
	level := logLevel
	if level == "" {
		level = logging.GetLogLevel()
	}
	logger := logging.NewLogger("padring", level, nil)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("❌ Failed to load configuration", "error", err)
		os.Exit(1)
	}

	root, err := cfg.Root()
	if err != nil {
		logger.Error("❌ Failed to resolve profile root", "error", err)
		os.Exit(1)
	}

	convArgv, err := cfg.ConvertArgv()
	if err != nil {
		logger.Error("❌ Bad convert_command", "error", err)
		os.Exit(1)
	}
	injArgv, err := cfg.InjectArgv()
	if err != nil {
		logger.Error("❌ Bad inject_command", "error", err)
		os.Exit(1)
	}

	selfPath, err := os.Executable()
	if err != nil {
		logger.Error("❌ Failed to get executable path", "error", err)
		os.Exit(1)
	}

	sess, err := profile.Open(profile.Options{
		Root:           root,
		DeviceGlob:     cfg.DeviceGlob,
		ConvertCommand: convArgv,
		InjectCommand:  injArgv,
		SelfPath:       selfPath,
		Logger:         logger,
	})
	if err != nil {
		logger.Error("❌ Failed to open profile", "root", root, "error", err)
		os.Exit(1)
	}

	return sess, logger
}

func main() {
	// Set up panic recovery to return a non-zero exit code
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "PANIC: %v\n", r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("padring %s\n", version)
		fmt.Printf("Built: %s\n", getBuildTimestamp())
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
