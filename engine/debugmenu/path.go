package debugmenu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Separator splits menu path segments.
const Separator = ">"

var ErrInvalidPath = errors.New("debugmenu: invalid menu path")

// Segment is one level of a menu path, e.g. "Game[-1000]".
type Segment struct {
	Name     string
	Priority int
	// Explicit is set when the segment carried a bracketed priority.
	Explicit bool
}

// ParsePath splits a path like "Game[-1000]>Exit[1000]" into segments. A
// path needs at least two segments: an entry always lives inside a menu.
func ParsePath(path string) ([]Segment, error) {
	if !strings.Contains(path, Separator) {
		return nil, fmt.Errorf("%w %q: no %q separator", ErrInvalidPath, path, Separator)
	}
	parts := strings.Split(path, Separator)
	segs := make([]Segment, 0, len(parts))
	for i, p := range parts {
		s, err := parseSegment(p)
		if err != nil {
			return nil, fmt.Errorf("%w %q: segment %d: %v", ErrInvalidPath, path, i, err)
		}
		segs = append(segs, s)
	}
	return segs, nil
}

func parseSegment(s string) (Segment, error) {
	name := s
	var seg Segment
	if strings.HasSuffix(s, "]") {
		open := strings.LastIndexByte(s, '[')
		if open < 0 {
			return seg, errors.New("unbalanced ']'")
		}
		prio, err := strconv.Atoi(s[open+1 : len(s)-1])
		if err != nil {
			return seg, fmt.Errorf("bad priority %q", s[open+1:len(s)-1])
		}
		name = s[:open]
		seg.Priority = prio
		seg.Explicit = true
	}
	if strings.TrimSpace(name) == "" {
		return seg, errors.New("empty name")
	}
	seg.Name = name
	return seg, nil
}
