package logger

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
)

// WrapProcess runs the service as a child process and relays its JSON logs.
// A panic dump on the child's stderr is folded into a single fatal record.
// It never returns: the wrapper exits with the child's exit code.
func WrapProcess(executable string, arg ...string) {
	wrapperLogger := NewLogger("Logs wrapper")
	defer handlePanic(wrapperLogger)

	r, w, err := os.Pipe()
	if err != nil {
		wrapperLogger.Fatal().Err(err).Msg("Could not create pipe for logs")
		os.Exit(1)
	}

	cmd := exec.Command(executable, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = w

	if err = cmd.Start(); err != nil {
		wrapperLogger.Fatal().Err(err).Str("executable", executable).Msg("Could not launch service process")
		os.Exit(1)
	}
	exitCodeCh := make(chan int)
	logsCh := make(chan []byte)

	go waitForCommandToExit(cmd, wrapperLogger, exitCodeCh)
	go collectLogs(r, wrapperLogger, logsCh)

	relay := &logRelay{out: os.Stderr, logger: wrapperLogger}
	for {
		select {
		case exitCode := <-exitCodeCh:
			handleExit(exitCode, relay.panicLogs.String(), wrapperLogger)
		case line := <-logsCh:
			relay.handleLine(line)
		}
	}
}

func waitForCommandToExit(cmd *exec.Cmd, wrapperLogger zerolog.Logger, exitCodeCh chan<- int) {
	defer handlePanic(wrapperLogger)
	err := cmd.Wait()
	if err == nil {
		exitCodeCh <- 0
		return
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		exitCodeCh <- 1
		return
	}
	exitCodeCh <- exitErr.ExitCode()
}

func collectLogs(r io.Reader, wrapperLogger zerolog.Logger, logsCh chan<- []byte) {
	defer handlePanic(wrapperLogger)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := append([]byte(nil), scanner.Bytes()...)
		logsCh <- line
	}
	if err := scanner.Err(); err != nil {
		wrapperLogger.Fatal().Err(err).Msg("Error scanning piped service stderr")
		os.Exit(1)
	}
}

func handleExit(exitCode int, panicLogs string, wrapperLogger zerolog.Logger) {
	if exitCode == 0 {
		wrapperLogger.Info().Msg("Exited with code 0")
	} else {
		wrapperLogger.
			Fatal().
			Err(errors.New(panicLogs)).
			Msgf("Service exited with code: %d", exitCode)
	}
	os.Exit(exitCode)
}

type logRelay struct {
	out        io.Writer
	logger     zerolog.Logger
	foundPanic bool
	panicLogs  strings.Builder
}

// handleLine passes JSON records through and collects everything after a panic header.
func (relay *logRelay) handleLine(line []byte) {
	text := string(line)
	if !relay.foundPanic && strings.HasPrefix(text, "panic") {
		relay.foundPanic = true
	}
	switch {
	case len(line) == 0:
		return
	case relay.foundPanic:
		relay.panicLogs.WriteString(text)
		relay.panicLogs.WriteString("\n")
	case isJSON(line):
		_, _ = fmt.Fprintln(relay.out, text)
	default:
		relay.logger.Error().Msgf("Got log line that is not JSON formatted: '%s'", text)
	}
}

func handlePanic(wrapperLogger zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}
	wrapperLogger.Fatal().
		Caller().
		Str("error", fmt.Sprint(r)).
		Str("stack_trace", string(debug.Stack())).
		Msg("Wrapper panicked and exited")
}

func isJSON(b []byte) bool {
	var js json.RawMessage
	err := json.Unmarshal(b, &js)
	return err == nil && js != nil
}
