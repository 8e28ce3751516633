package clipboard

import (
	atotto "github.com/atotto/clipboard"

	"github.com/1769-performance/logchart/logging"
)

// Copy places text on the system clipboard. The native clipboard is
// preferred; when it is unavailable (ssh sessions, minimal containers)
// an OSC52 escape sequence is written instead so the terminal itself
// does the copy.
func Copy(text string) error {
	if err := atotto.WriteAll(text); err != nil {
		logging.Warnf("Clipboard: native copy failed (%v), trying OSC52", err)
		return copyOSC52(text)
	}
	logging.Infof("Clipboard: copied natively")
	return nil
}
