// Package logger prints timestamped, colour-coded log lines for the server
// and the CLI.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	cInf  = color.New(color.FgCyan, color.Bold).SprintFunc()
	cWarn = color.New(color.FgYellow, color.Bold).SprintFunc()
	cErr  = color.New(color.FgRed, color.Bold).SprintFunc()
	cSucc = color.New(color.FgGreen, color.Bold).SprintFunc()
	cFatl = color.New(color.BgRed, color.FgWhite, color.Bold).SprintFunc()
	cTime = color.New(color.FgHiBlack).SprintFunc()
	cLink = color.New(color.FgHiBlue, color.Underline).SprintFunc()
)

var (
	outMu  sync.Mutex
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func init() {
	log.SetFlags(0)
}

// SetOutput redirects both streams, mostly for tests. Passing nil restores
// the process defaults.
func SetOutput(out, errOut io.Writer) {
	outMu.Lock()
	defer outMu.Unlock()

	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout, stderr = out, errOut
}

func timeStamp() string {
	return cTime(time.Now().Format("2006-01-02 15:04:05"))
}

func write(toErr bool, tag string, format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)

	outMu.Lock()
	defer outMu.Unlock()

	w := stdout
	if toErr {
		w = stderr
	}
	fmt.Fprintf(w, "%s %s %s\n", timeStamp(), tag, msg)
}

func LogInfo(format string, v ...interface{}) {
	write(false, cInf("[INFO]"), format, v...)
}

func LogSuccess(format string, v ...interface{}) {
	write(false, cSucc("[OK]"), format, v...)
}

func LogWarn(format string, v ...interface{}) {
	write(false, cWarn("[WARN]"), format, v...)
}

func LogError(format string, v ...interface{}) {
	write(true, cErr("[ERR]"), format, v...)
}

// LogFatal logs and terminates the process with exit code 1.
func LogFatal(format string, v ...interface{}) {
	write(true, cFatl("[FATAL]"), format, v...)
	os.Exit(1)
}

// LogServerStart prints the "ready" block once the listener is about to accept.
func LogServerStart(name string, port int, baseURL string) {
	outMu.Lock()
	defer outMu.Unlock()

	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "   %s  %s\n", cSucc("⚡ "+name+" is serving"), cTime("waiting for visitors..."))
	fmt.Fprintf(stdout, "   %s  %s\n", cInf("➜ Local:"), fmt.Sprintf("http://localhost:%d", port))
	fmt.Fprintf(stdout, "   %s  %s\n", cInf("➜ Public:"), cLink(baseURL))
	fmt.Fprintln(stdout)
}
