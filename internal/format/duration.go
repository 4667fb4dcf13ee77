// Package format provides duration string conversion shared by the
// splitter, the console reporters, and the batch utilities.
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Duration converts a millisecond count to a dd:hh:mm:ss.lll string.
// Fields are zero-padded to two digits (three for milliseconds) and only
// the leading fields needed to cover the magnitude are printed: days and
// hours are omitted when zero. When short is set the millisecond suffix
// is dropped. Negative durations carry a single leading minus sign.
func Duration(millis int64, short bool) string {
	sign := ""
	if millis < 0 {
		sign = "-"
		millis = -millis
	}

	lll := millis % 1000
	millis /= 1000
	ss := millis % 60
	millis /= 60
	mm := millis % 60
	millis /= 60
	hh := millis % 24
	dd := millis / 24

	suffix := ""
	if !short {
		suffix = fmt.Sprintf(".%03d", lll)
	}

	switch {
	case dd > 0:
		return fmt.Sprintf("%s%02d:%02d:%02d:%02d%s", sign, dd, hh, mm, ss, suffix)
	case hh > 0:
		return fmt.Sprintf("%s%02d:%02d:%02d%s", sign, hh, mm, ss, suffix)
	default:
		return fmt.Sprintf("%s%02d:%02d%s", sign, mm, ss, suffix)
	}
}

// ParseClock converts an mm:ss string to milliseconds. Both fields must be
// non-negative integers; minutes may exceed 59.
func ParseClock(s string) (int64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("format: %q is not an mm:ss duration", s)
	}

	minutes, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("format: bad minutes in %q: %w", s, err)
	}
	seconds, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("format: bad seconds in %q: %w", s, err)
	}
	if minutes < 0 || seconds < 0 {
		return 0, fmt.Errorf("format: negative field in %q", s)
	}

	return minutes*60*1000 + seconds*1000, nil
}
