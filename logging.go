// SPDX-License-Identifier: MIT

package lcpeng

import "github.com/sirupsen/logrus"

// log is the package-level logger. It defaults to logrus's standard logger
// at its default level (Info); callers who want chunked-builder or alphabet
// verbosity can lower the level or swap the output with SetLogger.
var log = logrus.StandardLogger()

// SetLogger replaces the package-level logger. Passing nil is a no-op; the
// previous logger is kept.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		return
	}
	log = l
}
