package log

import (
	"io"
	"log"
	"sync/atomic"
)

var debug atomic.Bool

// SetDebug toggles Debug output.
func SetDebug(on bool) { debug.Store(on) }

// SetOutput redirects all levels and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := log.Writer()
	log.SetOutput(w)
	return prev
}

func Fatal(v ...any) { emit("[FATAL]", v) }

func Error(v ...any) { emit("[ERROR]", v) }

func Warn(v ...any) { emit("[WARN]", v) }

func Info(v ...any) { emit("[INFO]", v) }

func Debug(v ...any) {
	if !debug.Load() {
		return
	}
	emit("[DEBUG]", v)
}

func emit(level string, v []any) {
	args := make([]any, 0, len(v)+1)
	args = append(args, level)
	args = append(args, v...)
	log.Println(args...)
}

// RawWriter wraps w so that lone '\n' bytes become "\r\n". Use it while the
// terminal has output post-processing disabled.
func RawWriter(w io.Writer) io.Writer { return &rawWriter{w: w} }

type rawWriter struct {
	w    io.Writer
	prev byte
}

func (r *rawWriter) Write(p []byte) (int, error) {
	out := make([]byte, 0, len(p)+len(p)/8)
	for _, ch := range p {
		if ch == '\n' && r.prev != '\r' {
			out = append(out, '\r')
		}
		out = append(out, ch)
		r.prev = ch
	}
	if _, err := r.w.Write(out); err != nil {
		return 0, err
	}
	return len(p), nil
}
