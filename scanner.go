package toolbox

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/golang/glog"
	"golang.org/x/text/width"
)

const DefaultIOErrorMessage = "IOError : try again."

// LineSource yields one line of text at a time, after printing a prompt
type LineSource interface {
	NextLine(prompt string) string
}

// ScannerConfig configuration of a `Scanner`, zero values are replaced with defaults
type ScannerConfig struct {
	// Input the stream that lines are read from, default is `os.Stdin`
	Input io.Reader
	// Output receive prompts, default is `os.Stdout`
	Output io.Writer
	// ErrOutput receive error messages, default is `os.Stderr`
	ErrOutput io.Writer
	// IOErrorMessage is printed each time reading a line fails
	IOErrorMessage string
	// FoldWidth convert full-width characters(like `１２３`) to their narrow form before
	// the line is returned
	FoldWidth bool
}

var _ LineSource = (*Scanner)(nil)

// Scanner is a `LineSource` over an `io.Reader`. A failed read is reported to the error output and
// retried until a line is read, only end of the input stop the retry.
// A Scanner own its buffer so it must not be shared between goroutines.
type Scanner struct {
	input          io.Reader
	reader         *bufio.Reader
	output         io.Writer
	errOutput      io.Writer
	ioErrorMessage string
	foldWidth      bool
	exhausted      bool
}

func NewScanner(config ScannerConfig) *Scanner {
	if config.Input == nil {
		config.Input = os.Stdin
	}
	if config.Output == nil {
		config.Output = os.Stdout
	}
	if config.ErrOutput == nil {
		config.ErrOutput = os.Stderr
	}
	if config.IOErrorMessage == "" {
		config.IOErrorMessage = DefaultIOErrorMessage
	}
	return &Scanner{
		input:          config.Input,
		reader:         bufio.NewReader(config.Input),
		output:         config.Output,
		errOutput:      config.ErrOutput,
		ioErrorMessage: config.IOErrorMessage,
		foldWidth:      config.FoldWidth,
	}
}

// NewStdinScanner create a `Scanner` that read from standard input
func NewStdinScanner() *Scanner { return NewScanner(ScannerConfig{}) }

// Exhausted is true when the input reached its end
func (this *Scanner) Exhausted() bool { return this.exhausted }

// NextLine print the prompt and read a line without its terminator.
// When input is exhausted it return the remaining partial line, which may be empty.
func (this *Scanner) NextLine(prompt string) string {
	for {
		this.printPrompt(prompt)
		line, err := this.reader.ReadString('\n')
		if err == nil {
			return this.normalize(line)
		}
		if err == io.EOF {
			this.exhausted = true
			return this.normalize(line)
		}

		log.Warningf("Reading a line failed, trying again: %v", err)
		this.printError(this.ioErrorMessage)
	}
}

func (this *Scanner) normalize(line string) string {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if this.foldWidth {
		line = width.Fold.String(line)
	}
	return line
}

func (this *Scanner) printPrompt(prompt string) {
	if prompt != "" {
		io.WriteString(this.output, prompt)
	}
}
func (this *Scanner) printError(message string) {
	fmt.Fprintln(this.errOutput, message)
}
