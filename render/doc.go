// Package render draws boards, dice and solution walkthroughs for the
// terminal using lipgloss styles.
//
// Rendering never touches the grid: the path overlay ('#' on every cell the
// die has occupied so far) is computed per call and never written back.
package render
