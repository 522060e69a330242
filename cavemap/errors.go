package cavemap

import "errors"

// ErrMalformedLabels indicates label text that does not parse into a
// rectangular overlay of blank or upper-case labels.
var ErrMalformedLabels = errors.New("cavemap: malformed label text")
