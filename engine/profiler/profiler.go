//go:build profile

package profiler

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"syscall"
	"time"
)

// -------- public API --------

// Init must be called once on app start with a ring capacity in events.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	evrb.init(capacity)
}

// Enabled reports whether scopes are being recorded.
func Enabled() bool { return evrb.ready.Load() }

// Scope is an open profiling span. End closes it; calling End twice
// records a single close.
type Scope struct {
	frame   int
	startNS int64
	open    bool
}

// Start opens a named scope; close it with End on the returned value.
func Start(name string) Scope {
	if !evrb.ready.Load() {
		return Scope{}
	}
	fid := intern(name)
	now := time.Now().UnixNano()
	evrb.push(evEntry{AtNS: now, FrameID: fid, Open: true})
	return Scope{frame: fid, startNS: now, open: true}
}

func (s *Scope) End() {
	if !s.open {
		return
	}
	s.open = false
	end := time.Now().UnixNano()
	// Keep end >= start even when the clock did not advance.
	if end < s.startNS {
		end = s.startNS
	}
	evrb.push(evEntry{AtNS: end, FrameID: s.frame, Open: false})
}

// Dump writes the recorded scopes into a speedscope file in the temp dir
// and returns its path.
func Dump() (string, error) {
	evs := evrb.snapshot()
	if len(evs) == 0 {
		return "", fmt.Errorf("profiler: no events to dump")
	}
	profilePath := filepath.Join(os.TempDir(), "imbridge.profile.speedscope.json")
	if err := dumpSpeedscopeEvents(evs, profilePath); err != nil {
		return "", err
	}
	return profilePath, nil
}

// OpenProfilerGraph dumps the capture and launches speedscope on it.
func OpenProfilerGraph() (string, error) {
	profilePath, err := Dump()
	if err != nil {
		return "", err
	}

	cmd := exec.Command("speedscope", profilePath)
	// On Windows, hide console window:
	if runtime.GOOS == "windows" {
		if spa, ok := hideWindowAttr().(*syscall.SysProcAttr); ok {
			cmd.SysProcAttr = spa
		}
	}
	if err := cmd.Start(); err != nil {
		return profilePath, fmt.Errorf("launch speedscope: %w", err)
	}
	return profilePath, nil
}

// ---------- event ring ----------

type evEntry struct {
	AtNS    int64
	FrameID int
	Open    bool
}

type evRing struct {
	ready atomic.Bool
	cap   uint64
	write atomic.Uint64
	evs   []evEntry
}

func (r *evRing) init(capacity int) {
	r.cap = uint64(capacity)
	r.evs = make([]evEntry, r.cap)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *evRing) push(e evEntry) {
	i := r.write.Add(1) - 1
	r.evs[i%r.cap] = e
}

// snapshot returns events in write order.
func (r *evRing) snapshot() []evEntry {
	n := r.write.Load()
	if n == 0 {
		return nil
	}
	start := uint64(0)
	if n > r.cap {
		start = n - r.cap
	}
	size := n - start
	out := make([]evEntry, 0, size)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.cap])
	}
	return out
}

var evrb evRing

// ---------- string interner ----------

var (
	muFrames sync.Mutex
	frames   []string
	index    = map[string]int{}
)

func intern(name string) int {
	muFrames.Lock()
	defer muFrames.Unlock()
	if id, ok := index[name]; ok {
		return id
	}
	id := len(frames)
	index[name] = id
	frames = append(frames, name)
	return id
}

// ---------- speedscope export ----------

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
	Name     string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // µs since the first event
	Frame int    `json:"frame"`
}

// toSpeedscope balances the event stream: closes that do not match the
// innermost open scope are dropped (the ring may have cut their open), and
// scopes still open at the end are closed at the last timestamp.
// Timestamps are made monotonic.
func toSpeedscope(evs []evEntry, names []string) (ssFile, error) {
	if len(evs) == 0 {
		return ssFile{}, fmt.Errorf("profiler: no events")
	}
	base := evs[0].AtNS
	out := make([]ssEvent, 0, len(evs))
	var open []int
	var last int64

	for _, e := range evs {
		at := max((e.AtNS-base)/1000, last)
		if e.Open {
			open = append(open, e.FrameID)
		} else {
			if len(open) == 0 || open[len(open)-1] != e.FrameID {
				continue
			}
			open = open[:len(open)-1]
		}
		typ := "C"
		if e.Open {
			typ = "O"
		}
		out = append(out, ssEvent{Type: typ, At: at, Frame: e.FrameID})
		last = at
	}
	for i := len(open) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: last, Frame: open[i]})
	}
	if len(out) == 0 {
		return ssFile{}, fmt.Errorf("profiler: no balanced events")
	}

	shared := make([]ssFrame, len(names))
	for i, n := range names {
		shared[i] = ssFrame{Name: n}
	}
	return ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: shared},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "GUI bridge (evented)",
			Unit:     "microseconds",
			EndValue: last,
			Events:   out,
		}},
		Exporter: "imbridge-profiler",
		Name:     "GUI bridge capture",
	}, nil
}

// dumpSpeedscopeEvents writes through a temp file so a crashed dump never
// leaves a truncated profile behind.
func dumpSpeedscopeEvents(evs []evEntry, path string) error {
	muFrames.Lock()
	names := append([]string(nil), frames...)
	muFrames.Unlock()

	doc, err := toSpeedscope(evs, names)
	if err != nil {
		return err
	}
	b, err := json.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return os.Rename(tmp, path)
}
