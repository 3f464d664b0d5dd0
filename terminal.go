package toolbox

import (
	"fmt"
	"io"
	"os"

	log "github.com/golang/glog"
	"golang.org/x/crypto/ssh/terminal"
)

func IsTerminal(f *os.File) bool {
	return terminal.IsTerminal(int(f.Fd()))
}

// ReadSecret read a line without echoing it when the input of the scanner is a terminal.
// For any other input it behave like `ReadString`.
func (this *Scanner) ReadSecret(prompt string) (string, error) {
	f, ok := this.input.(*os.File)
	if !ok || !IsTerminal(f) {
		return this.ReadString(prompt)
	}

	for {
		this.printPrompt(prompt)
		secret, err := terminal.ReadPassword(int(f.Fd()))
		fmt.Fprintln(this.output)
		if err == nil {
			return this.normalize(string(secret)), nil
		}
		if err == io.EOF {
			this.exhausted = true
			return "", ErrEndOfInput
		}

		log.Warningf("Reading a secret failed, trying again: %v", err)
		this.printError(this.ioErrorMessage)
	}
}
