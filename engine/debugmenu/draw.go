package debugmenu

// Drawer is the subset of immediate-mode menu calls the tree needs.
type Drawer interface {
	BeginMainMenuBar() bool
	EndMainMenuBar()
	BeginMenu(label string) bool
	EndMenu()
	// MenuItem reports whether the item was clicked this frame.
	MenuItem(label string, selected bool) bool
}

// Draw emits the whole tree as the main menu bar. Call it once per GUI
// frame.
func (m *Menu) Draw(d Drawer) {
	if !d.BeginMainMenuBar() {
		return
	}
	for _, c := range m.root.children {
		drawNode(d, c)
	}
	d.EndMainMenuBar()
}

func drawNode(d Drawer, n *Node) {
	switch n.Kind {
	case KindCommand:
		if d.MenuItem(n.Name, false) {
			n.cmd()
		}
	case KindWindow:
		if d.MenuItem(n.Name, n.window.Visible()) {
			n.window.Toggle()
		}
	case KindSubMenu:
		if d.BeginMenu(n.Name) {
			for _, c := range n.children {
				drawNode(d, c)
			}
			d.EndMenu()
		}
	}
}
