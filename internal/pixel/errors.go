package pixel

import "errors"

// ErrUnknownFormat is returned when the image format cannot be detected
// from the file content.
var ErrUnknownFormat = errors.New("unable to detect image format")

// ErrorKind classifies why an image could not be loaded.
type ErrorKind int

const (
	// KindIO means the file could not be opened or read.
	KindIO ErrorKind = iota + 1
	// KindFormat means the content did not match any registered format.
	KindFormat
	// KindDecode means the format was recognised but the data is corrupt.
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "read failed"
	case KindFormat:
		return "unrecognized format"
	case KindDecode:
		return "decode failed"
	default:
		return "unknown error"
	}
}

// DecodeError describes a failure to load an image. None of these are
// retried.
type DecodeError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	msg := "load image " + e.Path + ": " + e.Kind.String()
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a DecodeError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}
