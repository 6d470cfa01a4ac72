// Package style describes how a label looks: its text, font, fill and
// stroke.
//
// Style values are plain data. Unset fields (zero values, nil paints) are
// resolved to canvas defaults by the replay that consumes them; the
// Default* constants name those defaults.
package style
