package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"teinei.dev/flip/analyzer"
	"teinei.dev/flip/logger"
	"teinei.dev/flip/negation"
	"teinei.dev/flip/types"
)

var FailedSentencesError = errors.New("some sentences could not be rewritten")

type analyzerFlags struct {
	mode     string
	userDict string
}

func (flags *analyzerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flags.mode, "mode", types.AnalyzerModeNormal, "tokenizer mode: normal, search or extended")
	cmd.Flags().StringVar(&flags.userDict, "user-dict", "", "path to a kagome user dictionary")
}

func (flags *analyzerFlags) analyzer() (analyzer.MorphologicalAnalyzer, error) {
	return analyzer.NewMorphologicalAnalyzer(analyzer.Params{
		Mode:           flags.mode,
		UserDictionary: flags.userDict,
	})
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "flip",
		Short:         "Toggle the polarity of polite Japanese sentences",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newToggleCommand(), newClassifyCommand(), newWrapCommand())
	return root
}

func newToggleCommand() *cobra.Command {
	var flags analyzerFlags
	var direction string
	cmd := &cobra.Command{
		Use:   "toggle [sentence...]",
		Short: "Rewrite sentences, one result per line; reads stdin when no sentence is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := types.Direction(direction)
			if !dir.IsValid() {
				return fmt.Errorf("%w: %q", types.WrongDirectionError, direction)
			}
			analyze, err := flags.analyzer()
			if err != nil {
				return err
			}
			return eachSentence(cmd, args, func(sentence string) (string, error) {
				return negation.Transform(analyze, sentence, dir)
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&direction, "direction", "d", string(types.DirectionToggle), "toggle, affirmative or negative")
	return cmd
}

func newClassifyCommand() *cobra.Command {
	var flags analyzerFlags
	cmd := &cobra.Command{
		Use:   "classify [sentence...]",
		Short: "Print the polarity of each sentence",
		RunE: func(cmd *cobra.Command, args []string) error {
			analyze, err := flags.analyzer()
			if err != nil {
				return err
			}
			return eachSentence(cmd, args, func(sentence string) (string, error) {
				polarity, err := negation.DetectPolarity(analyze, sentence)
				return polarity.Name(), err
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newWrapCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "wrap -- executable [args...]",
		Short: "Run a service and relay its logs as JSON records",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			logger.WrapProcess(args[0], args[1:]...)
		},
	}
}

// eachSentence prints one line per input. Failed sentences are echoed
// unchanged and reported on stderr.
func eachSentence(cmd *cobra.Command, args []string, process func(string) (string, error)) error {
	sentences := args
	if len(sentences) == 0 {
		var err error
		if sentences, err = readLines(cmd.InOrStdin()); err != nil {
			return err
		}
	}
	failed := 0
	for _, sentence := range sentences {
		result, err := process(sentence)
		if err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", sentence, err)
			result = sentence
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", FailedSentencesError, failed, len(sentences))
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
