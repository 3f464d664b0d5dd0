package toolbox

import (
	"regexp"
	"strconv"
	"unicode/utf8"

	log "github.com/golang/glog"
)

var (
	truePattern  = regexp.MustCompile(`(?i)true`)
	falsePattern = regexp.MustCompile(`(?i)false`)
)

// Predicate an extra acceptance rule for a value that is already parsed
type Predicate[T any] func(value T) bool

// ParseFunc convert a line of text to a value
type ParseFunc[T any] func(line string) (T, error)

// ReadOptions control a single read operation.
// With an empty `ErrorMessage` the line is read once and a failure is returned to the caller,
// otherwise the message is printed and reading continue until a valid value is read.
// `Validators` are alternatives: the value is accepted if any of them accept it.
type ReadOptions[T any] struct {
	Prompt       string
	ErrorMessage string
	Validators   []Predicate[T]
}

func (this ReadOptions[T]) accepts(value T) bool {
	if len(this.Validators) == 0 {
		return true
	}
	for i := 0; i < len(this.Validators); i++ {
		if this.Validators[i](value) {
			return true
		}
	}
	return false
}

// ReadValue read lines from the scanner until one of them is converted by `parse` and accepted by
// validators of the options. See `ReadOptions` for the retry policy.
func ReadValue[T any](scanner *Scanner, parse ParseFunc[T], options ReadOptions[T]) (T, error) {
	var zero T
	for {
		if scanner.Exhausted() {
			return zero, ErrEndOfInput
		}
		line := scanner.NextLine(options.Prompt)
		if line == "" && scanner.Exhausted() {
			return zero, ErrEndOfInput
		}

		value, err := parse(line)
		if err == nil {
			if options.accepts(value) {
				return value, nil
			}
			err = InvalidFormatError{Token: line}
		} else if !IsInvalidFormat(err) {
			err = InvalidFormatError{Token: line}
		}

		log.V(2).Infof("Input rejected: %v", err)
		if options.ErrorMessage == "" {
			return zero, err
		}
		scanner.printError(options.ErrorMessage)
	}
}

// ReadString read a line after printing the prompt
func (this *Scanner) ReadString(prompt string) (string, error) {
	return ReadValue(this, parseString, ReadOptions[string]{Prompt: prompt})
}

// ReadMatching read a line that fully match at least one of the patterns
func (this *Scanner) ReadMatching(options ReadOptions[string], patterns ...*regexp.Regexp) (string, error) {
	anchored := anchorPatterns(patterns)
	return ReadValue(this, func(line string) (string, error) {
		if !matchAny(anchored, line) {
			return "", InvalidFormatError{Token: line}
		}
		return line, nil
	}, options)
}

// ReadInt32 read a line and convert it to int32 with `ParseInt32Token`
func (this *Scanner) ReadInt32(options ReadOptions[int32]) (int32, error) {
	return ReadValue(this, ParseInt32Token, options)
}

// ReadInt64 read a line and convert it to int64 with `ParseInt64Token`
func (this *Scanner) ReadInt64(options ReadOptions[int64]) (int64, error) {
	return ReadValue(this, ParseInt64Token, options)
}

func (this *Scanner) ReadFloat64(options ReadOptions[float64]) (float64, error) {
	return ReadValue(this, parseFloat64, options)
}

// ReadRune read a line that contains exactly one character
func (this *Scanner) ReadRune(options ReadOptions[rune]) (rune, error) {
	return ReadValue(this, parseRune, options)
}

// ReadBool read `true` or `false` ignoring the case
func (this *Scanner) ReadBool(options ReadOptions[bool]) (bool, error) {
	return this.Ask(options, truePattern, falsePattern)
}

// Ask read an answer that fully match either `yes` or `no`
func (this *Scanner) Ask(options ReadOptions[bool], yes, no *regexp.Regexp) (bool, error) {
	yes, no = anchorPattern(yes), anchorPattern(no)
	return ReadValue(this, func(line string) (bool, error) {
		if yes.MatchString(line) {
			return true, nil
		}
		if no.MatchString(line) {
			return false, nil
		}
		return false, InvalidFormatError{Token: line}
	}, options)
}

//region parsers
func parseString(line string) (string, error) { return line, nil }

func parseFloat64(line string) (float64, error) {
	value, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, InvalidFormatError{Token: line}
	}
	return value, nil
}

func parseRune(line string) (rune, error) {
	if utf8.RuneCountInString(line) != 1 {
		return 0, InvalidFormatError{Token: line}
	}
	r, _ := utf8.DecodeRuneInString(line)
	return r, nil
}

// anchorPattern make the pattern match only the whole input
func anchorPattern(pattern *regexp.Regexp) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + pattern.String() + `)$`)
}
func anchorPatterns(patterns []*regexp.Regexp) []*regexp.Regexp {
	result := make([]*regexp.Regexp, len(patterns))
	for i := 0; i < len(patterns); i++ {
		result[i] = anchorPattern(patterns[i])
	}
	return result
}
func matchAny(patterns []*regexp.Regexp, s string) bool {
	for i := 0; i < len(patterns); i++ {
		if patterns[i].MatchString(s) {
			return true
		}
	}
	return false
}

//endregion
