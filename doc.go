// Package loom is a retained-mode view-tree engine: per-node state
// behind Pod wrappers, sequence adapters for child lists, Stack and
// Wrap flex layout, and a CSS-like style cascade with specificity,
// per-frame caching, and animated transitions.
//
// A UI drives four strictly sequential passes per frame over one tree:
// rebuild, event, layout, draw. Rendering, windowing, and font loading
// stay outside, consumed through small capability interfaces.
package loom
