// Package debugmenu is a registry of debug commands and toggleable windows
// addressed by path strings and drawn as the GUI's main menu bar.
//
//	m.RegisterCommand("Game[-1000]>Exit[1000]", quit)
//	demo, _ := m.RegisterWindow("Game[-1000]>Dear ImGui Demo")
//
// Siblings are ordered by ascending priority. A segment without brackets
// has priority 0.
package debugmenu

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/hubastard/imbridge/engine/core"
)

var (
	ErrDuplicateEntry = errors.New("debugmenu: entry already exists")
	ErrNotSubMenu     = errors.New("debugmenu: path crosses a command or window")
)

type Kind int

const (
	KindSubMenu Kind = iota
	KindCommand
	KindWindow
)

func (k Kind) String() string {
	switch k {
	case KindSubMenu:
		return "submenu"
	case KindCommand:
		return "command"
	case KindWindow:
		return "window"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Node is one menu entry. Which payload is set depends on Kind.
type Node struct {
	Name     string
	Kind     Kind
	Priority int
	explicit bool

	cmd      func()
	window   *Window
	children []*Node
}

// Children returns the node's ordered children; nil for leaves.
func (n *Node) Children() []*Node { return n.children }

// Window returns the state behind a KindWindow node.
func (n *Node) Window() *Window { return n.window }

func (n *Node) child(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// WindowID identifies a registered window. InvalidWindow is never issued.
type WindowID int

const InvalidWindow WindowID = -1

// Window is the visibility state of a registered window.
type Window struct {
	Name    string
	visible bool
}

func (w *Window) Visible() bool     { return w.visible }
func (w *Window) SetVisible(v bool) { w.visible = v }
func (w *Window) Toggle()           { w.visible = !w.visible }

// Open exposes the flag for GUI calls that clear it from a close button.
func (w *Window) Open() *bool { return &w.visible }

// PriorityConflict records a registration that implied a different
// priority for an existing submenu.
type PriorityConflict struct {
	Path     string
	Menu     string
	Stored   int
	Proposed int
}

type Option func(*Menu)

func WithLogger(l *slog.Logger) Option {
	return func(m *Menu) { m.log = l }
}

// Menu is the registry root. It is not safe for concurrent use; register
// and draw from the GUI thread.
type Menu struct {
	root      Node
	windows   []*Window
	conflicts []PriorityConflict
	log       *slog.Logger
}

func New(opts ...Option) *Menu {
	m := &Menu{root: Node{Name: "Root", Kind: KindSubMenu}}
	for _, o := range opts {
		o(m)
	}
	if m.log == nil {
		m.log = core.Logger()
	}
	return m
}

// Root returns the invisible top node whose children are the menu bar.
func (m *Menu) Root() *Node { return &m.root }

// Conflicts returns every priority conflict seen so far.
func (m *Menu) Conflicts() []PriorityConflict { return m.conflicts }

// RegisterCommand adds an item that calls fn when clicked.
func (m *Menu) RegisterCommand(path string, fn func()) error {
	if fn == nil {
		return fmt.Errorf("%w %q: nil command", ErrInvalidPath, path)
	}
	_, err := m.add(path, KindCommand, fn)
	return err
}

// RegisterWindow adds an item toggling a window's visibility. Windows start
// hidden.
func (m *Menu) RegisterWindow(path string) (WindowID, error) {
	n, err := m.add(path, KindWindow, nil)
	if err != nil {
		return InvalidWindow, err
	}
	m.windows = append(m.windows, n.window)
	return WindowID(len(m.windows) - 1), nil
}

// Window returns the window registered under id, or nil.
func (m *Menu) Window(id WindowID) *Window {
	if id < 0 || int(id) >= len(m.windows) {
		return nil
	}
	return m.windows[id]
}

// add checks the whole path before touching the tree, so a failed
// registration leaves it as it was.
func (m *Menu) add(path string, kind Kind, fn func()) (*Node, error) {
	segs, err := ParsePath(path)
	if err != nil {
		m.log.Warn("debug menu registration rejected", "path", path, "err", err)
		return nil, err
	}

	// Walk the existing prefix.
	cur := &m.root
	var prefix []*Node
	depth := 0
	for ; depth < len(segs)-1; depth++ {
		next := cur.child(segs[depth].Name)
		if next == nil {
			break
		}
		if next.Kind != KindSubMenu {
			err := fmt.Errorf("%w: %q in %q is a %s", ErrNotSubMenu, next.Name, path, next.Kind)
			m.log.Warn("debug menu registration rejected", "path", path, "err", err)
			return nil, err
		}
		m.checkConflict(path, next, segs[depth])
		prefix = append(prefix, next)
		cur = next
	}
	leaf := segs[len(segs)-1]
	if depth == len(segs)-1 && cur.child(leaf.Name) != nil {
		err := fmt.Errorf("%w: %q", ErrDuplicateEntry, path)
		m.log.Warn("debug menu registration rejected", "path", path, "err", err)
		return nil, err
	}

	for i, n := range prefix {
		m.adoptPriority(n, segs[i], path)
	}
	for ; depth < len(segs)-1; depth++ {
		s := segs[depth]
		sub := &Node{Name: s.Name, Kind: KindSubMenu, Priority: s.Priority, explicit: s.Explicit}
		cur.children = append(cur.children, sub)
		cur = sub
	}

	n := &Node{Name: leaf.Name, Kind: kind, Priority: leaf.Priority, explicit: leaf.Explicit}
	switch kind {
	case KindCommand:
		n.cmd = fn
	case KindWindow:
		n.window = &Window{Name: leaf.Name}
	}
	cur.children = append(cur.children, n)

	sortTree(&m.root)
	m.log.Debug("debug menu entry registered", "path", path, "kind", kind)
	return n, nil
}

// checkConflict reports an explicit priority that differs from the one a
// submenu already fixed. It runs before validation completes, so a
// rejected registration still surfaces its conflict.
func (m *Menu) checkConflict(path string, n *Node, s Segment) {
	if !s.Explicit || !n.explicit || n.Priority == s.Priority {
		return
	}
	c := PriorityConflict{Path: path, Menu: n.Name, Stored: n.Priority, Proposed: s.Priority}
	m.conflicts = append(m.conflicts, c)
	m.log.Warn("debug menu priority conflict",
		"menu", c.Menu, "stored", c.Stored, "proposed", c.Proposed, "path", path)
}

// adoptPriority lets a submenu created without a bracketed priority take
// the first explicit one it sees. The move is logged at debug level since
// it reorders entries registered earlier.
func (m *Menu) adoptPriority(n *Node, s Segment, path string) {
	if !s.Explicit || n.explicit {
		return
	}
	m.log.Debug("debug menu priority adopted",
		"menu", n.Name, "from", n.Priority, "to", s.Priority, "path", path)
	n.Priority = s.Priority
	n.explicit = true
}

func sortTree(n *Node) {
	sort.SliceStable(n.children, func(i, j int) bool {
		return n.children[i].Priority < n.children[j].Priority
	})
	for _, c := range n.children {
		if c.Kind == KindSubMenu {
			sortTree(c)
		}
	}
}
