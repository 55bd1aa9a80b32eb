package middleware

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

// statusWriter captures the status code and body size.
type statusWriter struct {
	http.ResponseWriter
	statusCode int
	length     int
}

func (w *statusWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.length += n
	return n, err
}

var (
	cGet     = color.New(color.FgHiCyan, color.Bold).SprintFunc()
	cPost    = color.New(color.FgHiGreen, color.Bold).SprintFunc()
	cDefault = color.New(color.FgWhite, color.Bold).SprintFunc()

	c200 = color.New(color.FgGreen, color.Bold).SprintFunc()
	c300 = color.New(color.FgCyan, color.Bold).SprintFunc()
	c400 = color.New(color.FgYellow, color.Bold).SprintFunc()
	c500 = color.New(color.FgRed, color.Bold).SprintFunc()

	cTime = color.New(color.FgHiBlack).SprintFunc()
	cPath = color.New(color.FgWhite).SprintFunc()
)

// AccessLog writes one coloured line per request to out (stdout when nil).
func AccessLog(out io.Writer) func(http.Handler) http.Handler {
	if out == nil {
		out = os.Stdout
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(ww, r)

			duration := time.Since(start)

			fmt.Fprintf(out, "%s %s %s %s %s %s %s\n",
				cTime(start.Format("2006-01-02 15:04:05")),
				methodTag(r.Method),
				cPath(r.RequestURI),
				statusTag(ww.statusCode),
				cTime("|"),
				cTime(duration.Round(time.Microsecond).String()),
				cTime(shortID(GetRequestID(r.Context()))),
			)
		})
	}
}

func methodTag(method string) string {
	tag := fmt.Sprintf("%-7s", "["+method+"]")
	switch method {
	case http.MethodGet:
		return cGet(tag)
	case http.MethodPost:
		return cPost(tag)
	default:
		return cDefault(tag)
	}
}

func statusTag(code int) string {
	s := fmt.Sprintf("%d", code)
	switch {
	case code >= 500:
		return c500(s)
	case code >= 400:
		return c400(s)
	case code >= 300:
		return c300(s)
	default:
		return c200(s)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
