// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package logger

import (
	"time"
)

// LogAndMeasureExecutionTime logs the start of a function at the debug
// level and returns a closure that logs its end together with the elapsed
// time. Meant to be used as `defer LogAndMeasureExecutionTime(log, "f")()`.
func LogAndMeasureExecutionTime(log *Logger, functionName string) (onEnd func()) {
	start := time.Now()
	log.Debugf("%s start", functionName)
	return func() {
		log.Debugf("%s end. Took: %s", functionName, time.Since(start))
	}
}
