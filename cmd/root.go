package cmd

import (
	"context"

	"github.com/bnema/void-bridge/internal/adapters/stdio"
	"github.com/bnema/void-bridge/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func Execute() error {
	return ExecuteContext(context.Background())
}

func ExecuteContext(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

type rootOptions struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "void-bridge [state-path]",
		Short: "Serve a void memory manager over line-delimited JSON on stdio",
		Long: "void-bridge reads one JSON request per line from stdin and writes one JSON response per line to stdout. " +
			"It keeps a single memory manager cached by configuration and persists its state after every register command.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := wireApp(cmd, v, opts, args)
			if err != nil {
				return err
			}
			defer app.close()

			ctx := app.context(cmd.Context())
			bridge := app.newBridge()
			source := stdio.NewSource(cmd.InOrStdin(), app.settings.Input.MaxLineBytes)
			sink := stdio.NewSink(cmd.OutOrStdout())

			if err := bridge.Run(ctx, source, sink); err != nil {
				app.logger.Error(ctx, "bridge stopped", zap.Error(err))
				return err
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "path to a void-bridge.toml settings file")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error")
	flags.String("log-format", "", "log encoder: json or console")
	flags.Int("top", 0, "number of ranked entries returned by register")

	_ = v.BindPFlag(config.LogLevelKey, flags.Lookup("log-level"))
	_ = v.BindPFlag(config.LogFormatKey, flags.Lookup("log-format"))
	_ = v.BindPFlag(config.ResponseTopKey, flags.Lookup("top"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newInspectCmd(v, opts),
	)

	return rootCmd
}
