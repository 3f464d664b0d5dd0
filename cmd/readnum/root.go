package main

import (
	goflag "flag"
	"fmt"
	"io"
	"os"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/devops-simba/toolbox"
)

const (
	envPrompt       = "READNUM_PROMPT"
	envErrorMessage = "READNUM_ERROR_MESSAGE"
)

type cmdFlags struct {
	bits         int
	prompt       string
	errorMessage string
	min          string
	max          string
	foldWidth    bool
}

var stdin io.Reader = os.Stdin

func newRootCommand() *cobra.Command {
	flags := &cmdFlags{}
	rootCmd := &cobra.Command{
		Use:           toolbox.ApplicationName,
		Short:         "read a bounded integer from standard input",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// glog refuses to log properly until the go flag set is parsed, its values
			// are already set through the persistent flags
			goflag.CommandLine.Parse([]string{})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return toolbox.RunUntilInterrupted(func() error {
				return readNumber(cmd.OutOrStdout(), cmd.ErrOrStderr(), flags)
			})
		},
	}

	rootCmd.Flags().IntVarP(&flags.bits, "bits", "b", 32, "width of the integer, 32 or 64")
	rootCmd.Flags().StringVarP(&flags.prompt, "prompt", "p", toolbox.ReadEnv(envPrompt, "number > "), "prompt printed before each read")
	rootCmd.Flags().StringVarP(&flags.errorMessage, "error-message", "e", toolbox.ReadEnv(envErrorMessage, "error : try again."),
		"message printed when the input is rejected, empty disable the retry")
	rootCmd.Flags().StringVar(&flags.min, "min", "", "smallest accepted value")
	rootCmd.Flags().StringVar(&flags.max, "max", "", "largest accepted value")
	rootCmd.Flags().BoolVar(&flags.foldWidth, "fold-width", false, "accept full-width digits")

	// expose glog flags(-v, -logtostderr, ...) on the command line
	rootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
	return rootCmd
}

func Execute() error {
	return execute(newRootCommand())
}

func execute(rootCmd *cobra.Command) error {
	pflag.CommandLine = rootCmd.PersistentFlags()
	defer log.Flush()
	return rootCmd.Execute()
}

func readNumber(out, errOut io.Writer, flags *cmdFlags) error {
	scanner := toolbox.NewScanner(toolbox.ScannerConfig{
		Input:     stdin,
		Output:    out,
		ErrOutput: errOut,
		FoldWidth: flags.foldWidth,
	})

	switch flags.bits {
	case 32:
		return readAndPrint(out, scanner.ReadInt32, toolbox.ParseInt32Token, flags)
	case 64:
		return readAndPrint(out, scanner.ReadInt64, toolbox.ParseInt64Token, flags)
	default:
		return fmt.Errorf("unsupported integer width %d: %w", flags.bits, toolbox.ErrInvalidArgument)
	}
}

func readAndPrint[T int32 | int64](
	out io.Writer,
	read func(toolbox.ReadOptions[T]) (T, error),
	parse toolbox.ParseFunc[T],
	flags *cmdFlags,
) error {
	validators, err := rangeValidators(parse, flags.min, flags.max)
	if err != nil {
		return err
	}

	value, err := read(toolbox.ReadOptions[T]{
		Prompt:       flags.prompt,
		ErrorMessage: flags.errorMessage,
		Validators:   validators,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, value)
	return err
}

// rangeValidators build a validator that accept values between min and max, empty bound is open
func rangeValidators[T int32 | int64](parse toolbox.ParseFunc[T], min, max string) ([]toolbox.Predicate[T], error) {
	if min == "" && max == "" {
		return nil, nil
	}

	var lower, upper T
	hasLower, hasUpper := min != "", max != ""
	var err error
	if hasLower {
		if lower, err = parse(min); err != nil {
			return nil, fmt.Errorf("invalid --min: %w", err)
		}
	}
	if hasUpper {
		if upper, err = parse(max); err != nil {
			return nil, fmt.Errorf("invalid --max: %w", err)
		}
	}
	if hasLower && hasUpper && lower > upper {
		return nil, fmt.Errorf("--min %d is greater than --max %d: %w", lower, upper, toolbox.ErrInvalidArgument)
	}

	return []toolbox.Predicate[T]{
		func(value T) bool {
			return (!hasLower || value >= lower) && (!hasUpper || value <= upper)
		},
	}, nil
}
