package cmd

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/alignby/internal/config"
	"github.com/Iron-Ham/alignby/internal/errors"
)

// version is set at build time with -ldflags "-X ...cmd.version=...".
var version = "dev"

// rootOptions holds flag values that are not routed through viper.
type rootOptions struct {
	tail        bool
	printConfig bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "alignby [-t] <word>",
		Short: "Align lines of text on a delimiter word",
		Long: `alignby reads lines from standard input, splits each line at the first
occurrence of <word> (or the last one with -t), and writes the lines back
with the left parts padded so that every <word> starts in the same column.

Lines without <word> are padded to the column and get <word> appended.
Flags are only read before <word>; everything after it is ignored. A word
that starts with a dash is used as is unless it names one of the flags
below, in which case put "--" in front of it:

  alignby -- -t`,
		Example: `  printf 'a = 1\nlong_name = 2\n' | alignby =
  git log --oneline | alignby -t ' '`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlign(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.BoolVarP(&opts.tail, "tail", "t", false, "split at the last occurrence of the word")
	flags.BoolVar(&opts.printConfig, "print-config", false, "print the effective configuration as YAML and exit")
	flags.StringP("config", "c", "", "config file (default is "+config.ConfigFile()+")")
	flags.String("width", "", "width unit for padding: bytes, runes, cells or ansi")
	flags.String("log-level", "", "enable logging at this level: debug, info, warn, error")
	flags.String("log-file", "", "enable logging to this file instead of stderr")

	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("align.width", flags.Lookup("width"))
	_ = viper.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("logging.file", flags.Lookup("log-file"))

	// Registered up front so markWord knows them.
	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return errors.NewUsageError(err, usageLine(c))
	})

	return cmd
}

// markWord inserts "--" in front of the alignment word, so neither the word
// nor anything after it is parsed as a flag. The word is the first argument
// that is not a known flag or a flag value; "-x" or "--name" is only a flag
// when the command defines it.
func markWord(flags *pflag.FlagSet, args []string) []string {
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			return args
		}
		values, ok := flagArity(flags, args[i])
		if !ok {
			marked := make([]string, 0, len(args)+1)
			marked = append(marked, args[:i]...)
			marked = append(marked, "--")
			return append(marked, args[i:]...)
		}
		i += values
	}
	return args
}

// flagArity reports whether arg is a known flag and how many of the
// following arguments it consumes as its value.
func flagArity(flags *pflag.FlagSet, arg string) (values int, ok bool) {
	if len(arg) < 2 || arg[0] != '-' {
		return 0, false
	}

	if long, isLong := strings.CutPrefix(arg, "--"); isLong {
		name, _, inline := strings.Cut(long, "=")
		f := flags.Lookup(name)
		if f == nil {
			return 0, false
		}
		if inline || f.NoOptDefVal != "" {
			return 0, true
		}
		return 1, true
	}

	// Shorthand group such as -t or -tc file.
	group := arg[1:]
	for j := 0; j < len(group); j++ {
		f := flags.ShorthandLookup(group[j : j+1])
		if f == nil {
			return 0, false
		}
		rest := group[j+1:]
		if strings.HasPrefix(rest, "=") {
			return 0, true
		}
		if f.NoOptDefVal == "" {
			// The value is the rest of the group or the next argument.
			if rest != "" {
				return 0, true
			}
			return 1, true
		}
	}
	return 0, true
}

// initConfig layers defaults, the config file and ALIGNBY_* environment
// variables into viper, then loads and validates the result.
func initConfig() (*config.Config, error) {
	config.SetDefaults()

	explicit := viper.GetString("config")
	if explicit != "" {
		viper.SetConfigFile(explicit)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
	}

	viper.SetEnvPrefix("ALIGNBY")
	// e.g. ALIGNBY_ALIGN_WIDTH for align.width
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing default config file is fine; a named or broken one is not.
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("failed to read config file", err).WithFile(viper.ConfigFileUsed())
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, errors.NewConfigError("invalid configuration", err).WithFile(viper.ConfigFileUsed())
	}
	return cfg, nil
}

// Run executes alignby with args and the given streams and returns the
// process exit status. Errors are reported on stderr.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	args = markWord(cmd.Flags(), args)
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		reportError(stderr, cmd, err)
	}
	return errors.ExitCode(err)
}
