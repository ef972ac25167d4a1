package errors

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// PanicError is a panic recovered at a dynamic boundary, such as attr.Must
// failing inside a handler or an attribute used before construction.
type PanicError struct {
	// Op is the operation that panicked (e.g., "dsl.Evaluate").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// ErrorKind implements the kind lookup used by KindOf. A panic carrying a
// structured error keeps its kind; anything else is a build failure.
func (e *PanicError) ErrorKind() ErrorKind {
	if err, ok := e.Value.(error); ok {
		if k := KindOf(err); k != KindUnknown {
			return k
		}
	}
	return KindBuild
}

// Is matches ErrBuild for panics that carry no structured error.
func (e *PanicError) Is(target error) bool {
	return target == ErrBuild && e.ErrorKind() == KindBuild
}

// Recover converts a panic into a *PanicError stored in *errp. Use it
// deferred:
//
//	defer errors.Recover("dsl.Evaluate", &err)
func Recover(op string, errp *error) {
	if r := recover(); r != nil {
		*errp = &PanicError{
			Op:         op,
			Value:      r,
			StackTrace: CaptureStack(),
			Timestamp:  time.Now(),
		}
	}
}

// CaptureStack returns the current call stack as a string, skipping the
// runtime frames and CaptureStack itself.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteByte('\n')
		if !more {
			break
		}
	}
	return sb.String()
}
