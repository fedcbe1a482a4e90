// Package debug appends timestamped lines to kit-debug.log next to the
// binary. It exists for the cases where a user report needs more than the
// console log, nothing in the kit logs here on the happy path.
package debug

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

const filename = "kit-debug.log"

var (
	mu sync.Mutex
	fh *os.File
)

func open() *os.File {
	if fh != nil {
		return fh
	}
	var err error
	fh, err = os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("debug log: %v", err)
		return nil
	}
	return fh
}

func Log(msg string) {
	write(2, msg)
}

func Logf(format string, a ...any) {
	write(2, fmt.Sprintf(format, a...))
}

func write(skip int, msg string) {
	timeStr := time.Now().Format("2006-01-02 15:04:05.000")
	if _, fullPath, line, ok := runtime.Caller(skip); ok {
		msg = fmt.Sprintf("%s %s:%d %s", timeStr, filepath.Base(fullPath), line, msg)
	} else {
		msg = timeStr + " " + msg
	}

	mu.Lock()
	defer mu.Unlock()
	f := open()
	if f == nil {
		return
	}
	f.WriteString(msg + "\n")
}

func Close() {
	mu.Lock()
	defer mu.Unlock()
	if fh == nil {
		return
	}
	fh.Sync()
	fh.Close()
	fh = nil
}
