package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/philipp01105/daylog/config"
	"github.com/philipp01105/daylog/core"
	"github.com/philipp01105/daylog/formatter"
	"github.com/philipp01105/daylog/handler"
	"github.com/philipp01105/daylog/handler/consolehandler"
	"github.com/philipp01105/daylog/handler/filehandler"
	"github.com/philipp01105/daylog/logger"
)

var version = "1.0.0"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "daylog",
		Short:         "Append formatted lines to a daily log file",
		Long:          `A command line front end for the daylog file logger`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newWriteCmd())
	rootCmd.AddCommand(newPresetCmd())
	rootCmd.AddCommand(newBurstCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func newWriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "write [message...]",
		Short: "Append one line",
		Long:  `Render the message with the selected preset and append it to today's log file`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			levelName, _ := cmd.Flags().GetString("level")
			file, _ := cmd.Flags().GetString("file")
			line, _ := cmd.Flags().GetInt("line")
			column, _ := cmd.Flags().GetInt("column")

			level, err := core.ParseLevel(levelName)
			if err != nil {
				return err
			}

			l, err := openLogger(cmd)
			if err != nil {
				return err
			}
			defer l.Close()

			var site *core.CallSite
			if file != "" {
				site = &core.CallSite{File: file, Line: line, Column: column}
			}
			return l.SetLevel(level).Log(site, strings.Join(args, " "))
		},
	}

	addSinkFlags(cmd)
	cmd.Flags().StringP("level", "l", "verbose", "Severity tag")
	cmd.Flags().StringP("file", "f", "", "Call-site file name")
	cmd.Flags().Int("line", 0, "Call-site line number")
	cmd.Flags().Int("column", 0, "Call-site column number")
	return cmd
}

func newPresetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Work with preset files",
	}

	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Print the default configuration as a preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			data, err := config.MarshalPreset(config.Default(), config.Format(format))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	printCmd.Flags().StringP("format", "F", "yaml", "Output format (yaml, toml, json)")

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a preset file and print the resulting timestamp layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadPreset(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\nlayout %q, level %s, timezone %s\n",
				args[0], formatter.TimestampLayout(cfg), cfg.Level, cfg.Timezone)
			return nil
		},
	}

	cmd.AddCommand(printCmd)
	cmd.AddCommand(validateCmd)
	return cmd
}

func newBurstCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "burst",
		Short: "Write many lines from concurrent workers",
		Long:  `Write lines from several goroutines at once and report how many were written or dropped`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			workers, _ := cmd.Flags().GetInt("workers")
			count, _ := cmd.Flags().GetInt("count")

			l, err := openLogger(cmd)
			if err != nil {
				return err
			}

			var g errgroup.Group
			for w := 0; w < workers; w++ {
				level := core.Levels()[w%len(core.Levels())]
				site := &core.CallSite{File: fmt.Sprintf("worker-%d", w)}
				g.Go(func() error {
					for i := 0; i < count; i++ {
						_ = l.LogAt(level, site, fmt.Sprintf("line %d", i))
					}
					return nil
				})
			}
			_ = g.Wait()

			if err := l.Close(); err != nil {
				return err
			}
			if snap, ok := l.Stats(); ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "written %d, dropped %d\n", snap.WrittenTotal, snap.FailedTotal)
			}
			return nil
		},
	}

	addSinkFlags(cmd)
	cmd.Flags().IntP("workers", "w", 4, "Concurrent writers")
	cmd.Flags().IntP("count", "n", 100, "Lines per writer")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "daylog version %s\n", version)
		},
	}
}

func addSinkFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("preset", "p", "", "Preset file (yaml, toml or json)")
	cmd.Flags().StringP("dir", "d", filehandler.DefaultDir, "Log directory")
	cmd.Flags().Bool("stdout", false, "Write to standard output instead of the log file")
}

// openLogger builds the logger described by the sink flags
func openLogger(cmd *cobra.Command) (*logger.Logger, error) {
	presetPath, _ := cmd.Flags().GetString("preset")
	dir, _ := cmd.Flags().GetString("dir")
	toStdout, _ := cmd.Flags().GetBool("stdout")

	cfg := config.Default()
	if presetPath != "" {
		var err error
		if cfg, err = config.LoadPreset(presetPath); err != nil {
			return nil, err
		}
	}

	var h handler.Handler
	if toStdout {
		h = consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: cmd.OutOrStdout()})
	} else {
		fh, err := filehandler.NewFileHandler(filehandler.FileConfig{Dir: dir})
		if err != nil {
			return nil, err
		}
		h = fh
	}
	return logger.NewWithConfig(cfg, h), nil
}

func run(args []string, stdout, stderr io.Writer) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
