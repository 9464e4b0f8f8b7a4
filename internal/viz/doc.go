// Package viz renders oscillator runs in the terminal.
//
//   - [PhasePlot]: braille phase-plane plot (position vs velocity), one
//     colour per trajectory, drawn on a [Canvas]
//   - [TimeSeries]: asciigraph chart of position or velocity per step
//   - [Report]: run diagnostics with an energy summary per trajectory
//
// Colours come from a [Theme]; five are built in, see [ThemeNames].
package viz
