package clipboard

import (
	"encoding/base64"
	"errors"
	"os"
	"strings"

	"github.com/1769-performance/logchart/logging"
)

// copyOSC52 asks the terminal itself to perform the copy by writing an
// OSC52 sequence with the base64 payload to stdout. This is what makes
// the readout copy work over ssh, where no display-server clipboard is
// reachable from this process.
func copyOSC52(text string) error {
	if !terminalSupportsOSC52() {
		logging.Warnf("Clipboard: OSC52 unavailable (stdout not a TTY or TERM=dumb)")
		return errors.New("clipboard unavailable (terminal does not support OSC52)")
	}

	payload := base64.StdEncoding.EncodeToString([]byte(text))
	if _, err := os.Stdout.WriteString("\x1b]52;c;" + payload + "\x07"); err != nil {
		logging.Warnf("Clipboard: OSC52 write failed: %v", err)
		return err
	}
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}

// Heuristic only. A terminal may still swallow the sequence, in which
// case the copy silently does nothing.
func terminalSupportsOSC52() bool {
	if term := os.Getenv("TERM"); term == "" || strings.EqualFold(term, "dumb") {
		return false
	}
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
