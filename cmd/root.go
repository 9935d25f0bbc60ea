package cmd

import (
	"os"
	"strings"

	"github.com/google/gops/agent"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zeromicro/go-zero/core/logx"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "sizedsort",
	Short: "Compare insertion sort over a managed and a manually allocated sized value",
	// 任何失败都不打印用法，也不打印 cobra 自带的错误信息，错误统一由 Execute 记录
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLog(viper.GetString("log-level")); err != nil {
			return err
		}
		if viper.GetBool("gops") {
			if err := agent.Listen(agent.Options{}); err != nil {
				return errors.WithMessage(err, "Failed to start gops agent")
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		agent.Close()
	},
	RunE: runBenchmark,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	flags.String("log-level", "info", "log level: debug, info, error or severe")
	flags.Bool("gops", false, "start a gops agent for live diagnostics")
	viper.BindPFlags(flags)
}

func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	}
	viper.SetEnvPrefix("SIZEDSORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if configFile == "" {
		return
	}
	if err := viper.ReadInConfig(); err != nil {
		logx.Severef("Failed to read config file %v: %v", configFile, err)
		os.Exit(1)
	}
}

// setupLog 日志写到 stderr，stdout 只留给报告。
func setupLog(level string) error {
	switch level {
	case "debug", "info", "error", "severe":
	default:
		return errors.Errorf("unknown log level %q", level)
	}

	if err := logx.SetUp(logx.LogConf{
		ServiceName: "sizedsort",
		Mode:        "console",
		Encoding:    "plain",
		Level:       level,
	}); err != nil {
		return errors.WithMessage(err, "Failed to setup logx")
	}
	logx.SetWriter(logx.NewWriter(os.Stderr))
	logx.DisableStat()

	return nil
}

// Execute is the command line entrypoint.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Severef("Failed to execute command: %v", err)
		logx.Close()
		os.Exit(1)
	}
	logx.Close()
}
