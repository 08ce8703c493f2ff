package outline

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// PointID identifies a point within one editing session. The zero value
// denotes "no point".
type PointID uint64

// ContourID identifies a contour within one editing session. The zero value
// denotes "no contour".
type ContourID uint64

// NoPoint is the null point identity.
const NoPoint PointID = 0

// NoContour is the null contour identity.
const NoContour ContourID = 0

func (id PointID) String() string {
	return "p" + strconv.FormatUint(uint64(id), 10)
}

func (id ContourID) String() string {
	return "c" + strconv.FormatUint(uint64(id), 10)
}

// ParsePointID parses the textual form produced by PointID.String, e.g. "p17".
func ParsePointID(s string) (PointID, error) {
	num, ok := strings.CutPrefix(s, "p")
	if !ok {
		return NoPoint, errIdent(s)
	}
	n, err := strconv.ParseUint(num, 10, 64)
	if err != nil || n == 0 {
		return NoPoint, errIdent(s)
	}
	return PointID(n), nil
}

// ParseContourID parses the textual form produced by ContourID.String, e.g. "c3".
func ParseContourID(s string) (ContourID, error) {
	num, ok := strings.CutPrefix(s, "c")
	if !ok {
		return NoContour, errIdent(s)
	}
	n, err := strconv.ParseUint(num, 10, 64)
	if err != nil || n == 0 {
		return NoContour, errIdent(s)
	}
	return ContourID(n), nil
}

func errIdent(s string) error {
	return fmt.Errorf("glyph model: not a valid identity: %q", s)
}

// --- ID allocation ---------------------------------------------------------

// IDSource mints point and contour identities. Each editing session owns one
// source; identities from different sources are unrelated and must not be
// mixed. Points and contours draw from a shared counter, so a numeric value
// occurs at most once per session regardless of kind.
//
// The zero value is ready to use.
type IDSource struct {
	counter atomic.Uint64
}

// NextPoint mints a fresh point identity.
func (src *IDSource) NextPoint() PointID {
	return PointID(src.counter.Add(1))
}

// NextContour mints a fresh contour identity.
func (src *IDSource) NextContour() ContourID {
	return ContourID(src.counter.Add(1))
}
