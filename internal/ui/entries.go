package ui

// entry is one release in the browsed changelog, newest first.
type entry struct {
	version string
	date    string
	title   string
	note    string
	major   int
}

func changelog() []entry {
	return []entry{
		{version: "v2.1.0", date: "2026-07-18", title: "Gradient rules", note: "separator rules can blend between two colors across the width", major: 2},
		{version: "v2.0.1", date: "2026-06-30", title: "Window drift fix", note: "swapping delegates no longer leaves the view range behind the cursor", major: 2},
		{version: "v2.0.0", date: "2026-06-12", title: "Delegate capabilities", note: "semantic order, child relocation and policies become optional interfaces", major: 2},
		{version: "v1.6.2", date: "2026-05-02", title: "Prune on settle", note: "retained state is dropped only after the window settles", major: 1},
		{version: "v1.6.0", date: "2026-04-11", title: "Repaint boundaries", note: "rendered children are cached until their highlight or width changes", major: 1},
		{version: "v1.5.1", date: "2026-03-27", title: "Wide grapheme cuts", note: "labels are truncated at grapheme boundaries instead of bytes", major: 1},
		{version: "v1.5.0", date: "2026-03-08", title: "Inset rule labels", note: "rules take a label placed left, centered or right", major: 1},
		{version: "v1.4.0", date: "2026-02-14", title: "Keep-alive store", note: "hosts retain per-child state across scrolling", major: 1},
		{version: "v1.3.2", date: "2026-01-22", title: "Page movement", note: "paging walks by line budget so tall children count honestly", major: 1},
		{version: "v1.2.0", date: "2025-12-05", title: "Bubbles bridge", note: "delegates materialize into a bubbles list with filter passthrough", major: 1},
		{version: "v1.0.0", date: "2025-10-30", title: "First stable release", note: "builder and separated delegates, windowed list widget", major: 1},
		{version: "v0.9.0", date: "2025-09-19", title: "Separated delegate", note: "items and separators interleave into one combined sequence", major: 0},
		{version: "v0.8.1", date: "2025-08-28", title: "Cursor translation", note: "build functions see the cursor in their own index space", major: 0},
		{version: "v0.7.0", date: "2025-08-02", title: "Lazy building", note: "children are produced on demand from a build function", major: 0},
	}
}
