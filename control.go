package toolbox

import (
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	log "github.com/golang/glog"
)

var (
	ApplicationName = GetFilenameWithoutExtension(os.Args[0])
)

func GetFilenameWithoutExtension(path string) string {
	filenameWithExtension := filepath.Base(path)
	extension := filepath.Ext(filenameWithExtension)
	return strings.TrimSuffix(filenameWithExtension, extension)
}

// RunUntilInterrupted execute an interactive session in the background and wait for it to finish.
// SIGINT or SIGTERM end the wait, the session is blocked on its input so it is abandoned.
func RunUntilInterrupted(run func() error) error {
	stopRequested := make(chan os.Signal, 1)
	signal.Notify(stopRequested, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stopRequested)

	sessionStopped := make(chan error, 1)
	go func() { sessionStopped <- run() }()

	select {
	case receivedSignal := <-stopRequested:
		log.Infof("Stop signal received(%s), leaving the session", receivedSignal.String())
		return nil

	case err := <-sessionStopped:
		if errors.Is(err, ErrEndOfInput) {
			log.V(1).Infof("Session stopped: %v", err)
		} else if err != nil {
			log.Errorf("Session stopped unexpectedly: %v", err)
		}
		return err
	}
}
