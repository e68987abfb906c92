package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// bindEnvVars binds TABLESORT_<FLAG_NAME> environment variables to the flags
// of cmd, so "log-level" reads TABLESORT_LOG_LEVEL. Command line arguments
// win over the environment, which wins over defaults.
func bindEnvVars(cmd *cobra.Command) {
	bindFlagSet(cmd.Flags())
	bindFlagSet(cmd.PersistentFlags())
}

// bindFlagSet sets flags through fs so environment values count as set for
// required flag checks.
func bindFlagSet(fs *pflag.FlagSet) {
	fs.VisitAll(func(flag *pflag.Flag) {
		bindFlagToEnv(fs, flag)
	})
}

func bindFlagToEnv(fs *pflag.FlagSet, flag *pflag.Flag) {
	envName := flagToEnvName(flag.Name)

	if !strings.Contains(flag.Usage, envName) {
		flag.Usage = fmt.Sprintf("%s ($%s)", flag.Usage, envName)
	}

	if flag.Changed {
		return
	}

	envValue, ok := os.LookupEnv(envName)
	if !ok {
		return
	}
	if err := fs.Set(flag.Name, envValue); err != nil {
		slog.Error("failed to set flag from environment variable",
			slog.String("flag", flag.Name),
			slog.String("env", envName),
			slog.Any("err", err),
		)
	}
}

func flagToEnvName(name string) string {
	return strings.ToUpper(cmdName + "_" + strings.ReplaceAll(name, "-", "_"))
}
