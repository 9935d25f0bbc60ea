package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zeromicro/go-zero/core/logx"

	"sizedsort/harness"
)

// runnerOptions 供测试替换排序实现
var runnerOptions []harness.RunnerOption

func init() {
	bindConfigFlags(rootCmd.Flags(), harness.DefaultConfig())
	rootCmd.Flags().Bool("metrics", false, "dump collected metrics to stderr after the run")
	viper.BindPFlag("metrics", rootCmd.Flags().Lookup("metrics"))
}

func bindConfigFlags(flags *pflag.FlagSet, def harness.Config) {
	flags.Int("count", def.Count, "number of values in each collection")
	flags.Int("max-size", def.MaxSize, "exclusive upper bound of random value sizes")
	flags.Uint64("seed", def.Seed, "seed of the random source, 0 to seed from the clock")
	flags.String("strategy", string(def.Strategy), "how the sort shifts values: relocate or duplicate")
	flags.String("format", def.Format, "report format: text or json")
	viper.BindPFlags(flags)
}

func loadConfig() (harness.Config, error) {
	config := harness.DefaultConfig()
	if err := viper.Unmarshal(&config); err != nil {
		return config, errors.WithMessage(err, "Failed to unmarshal config")
	}
	return config, config.Validate()
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	// 随机源在进程内只播种一次，之后的运行沿用同一个随机源
	if !harness.Seeded() {
		seed := harness.InitRandom(config.Seed)
		logx.Infow("random source seeded", logx.Field("seed", seed))
	} else if config.Seed != 0 && config.Seed != harness.RandomSeed() {
		logx.Infow("random source already seeded, ignoring seed",
			logx.Field("seed", config.Seed),
			logx.Field("inUse", harness.RandomSeed()))
	}

	metrics := harness.NewMetrics()
	report, err := harness.NewRunner(config, metrics, runnerOptions...).Run(harness.Random())
	if report != nil {
		if werr := report.Write(cmd.OutOrStdout(), config.Format); werr != nil {
			return werr
		}
	}
	if viper.GetBool("metrics") {
		metrics.Dump(os.Stderr)
	}

	return err
}
