package main

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/kbukum/wonderwords/api"
	"github.com/kbukum/wonderwords/logger"
	"github.com/kbukum/wonderwords/transcript"
	"github.com/kbukum/wonderwords/version"
	"github.com/kbukum/wonderwords/youtube"
)

const appName = "transcript"

// errReported marks a failure that was already written to the user.
var errReported = stderrors.New("reported")

type options struct {
	videoID  string
	langs    []string
	json     bool
	timeout  time.Duration
	baseURL  string
	logLevel string
}

type resolverFactory func(opts options, log *logger.Logger) (transcript.Resolver, error)

func newYouTubeResolver(opts options, log *logger.Logger) (transcript.Resolver, error) {
	src, err := youtube.New(youtube.Config{BaseURL: opts.baseURL}, log)
	if err != nil {
		return nil, err
	}
	return transcript.NewService("youtube", src, transcript.Config{Timeout: opts.timeout}, log), nil
}

func execute(args []string, stdout, stderr io.Writer, build resolverFactory) int {
	root := newRootCommand(build)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if !stderrors.Is(err, errReported) {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}
	return 0
}

func newRootCommand(build resolverFactory) *cobra.Command {
	opts := options{}

	root := &cobra.Command{
		Use:   appName + " --video-id <id> [--lang <code>...]",
		Short: "Print the transcript of a YouTube video",
		Long: `Print the transcript of a YouTube video.

Preferred languages are tried in order. They can be comma separated
(--lang en,de), repeated (--lang en --lang de) or listed after the flag
(--lang en de). When none is available the first track is used.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := opts
			if len(args) > 0 {
				if cmd.Flags().Changed("lang") {
					o.langs = append(append([]string(nil), opts.langs...), args...)
				} else {
					o.langs = args
				}
			}
			return runTranscript(cmd, o, build)
		},
	}

	root.Flags().StringVar(&opts.videoID, "video-id", "", "YouTube video id")
	root.Flags().StringSliceVar(&opts.langs, "lang", transcript.DefaultLanguages, "Preferred language codes, in order")
	root.Flags().BoolVar(&opts.json, "json", false, "Print the JSON envelope")
	_ = root.MarkFlagRequired("video-id")

	pf := root.PersistentFlags()
	pf.DurationVar(&opts.timeout, "timeout", 30*time.Second, "Bound on one resolution")
	pf.StringVar(&opts.baseURL, "youtube-base-url", "", "Override the YouTube site root")
	pf.StringVar(&opts.logLevel, "log-level", envOr("LOG_LEVEL", "warn"), "Log level (logs go to stderr)")

	root.AddCommand(newVersionCommand(), newMCPCommand(&opts, build))
	return root
}

func runTranscript(cmd *cobra.Command, opts options, build resolverFactory) error {
	log := newLogger(opts.logLevel, cmd.ErrOrStderr())
	resolver, err := build(opts, log)
	if err != nil {
		return err
	}
	if c, ok := resolver.(interface{ Close(context.Context) error }); ok {
		defer func() { _ = c.Close(context.Background()) }()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := resolver.Execute(ctx, transcript.Request{VideoID: opts.videoID, Languages: opts.langs})

	if opts.json {
		env := transcript.Succeed(res)
		if err != nil {
			env = transcript.Fail(err)
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetEscapeHTML(false)
		if encErr := enc.Encode(env); encErr != nil {
			return encErr
		}
		if err != nil {
			return errReported
		}
		return nil
	}

	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", transcript.Fail(err).Error)
		return errReported
	}
	printPlain(cmd.OutOrStdout(), res)
	return nil
}

func printPlain(w io.Writer, res *transcript.Result) {
	fmt.Fprintf(w, "Transcript for %s (lang: %s)\n", res.VideoID, res.Language)
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, f := range res.Fragments {
		fmt.Fprintln(w, strings.ReplaceAll(f.Text, "\n", " "))
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := version.Get()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, v.Version)
			if v.GitCommit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", v.GitCommit)
			}
			if v.BuildTime != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", v.BuildTime)
			}
			if v.GoVersion != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "go:     %s\n", v.GoVersion)
			}
			return nil
		},
	}
}

func newMCPCommand(opts *options, build resolverFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the get_transcript tool over stdio (Model Context Protocol)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(opts.logLevel, cmd.ErrOrStderr())
			resolver, err := build(*opts, log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			h := api.NewHandler(resolver, api.Info{Service: appName}, log)
			log.Info("serving MCP over stdio", logger.Fields("tool", api.ToolName))
			return h.NewMCPServer(appName).Run(ctx, &mcp.StdioTransport{})
		},
	}
}

func newLogger(level string, w io.Writer) *logger.Logger {
	return logger.New(&logger.Config{
		Level:     level,
		Format:    logger.FormatConsole,
		NoColor:   true,
		Timestamp: true,
		Writer:    w,
	}, appName)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
