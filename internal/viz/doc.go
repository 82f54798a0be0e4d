// Package viz is a terminal frame driver for the egg scene.
//
// It renders the shells and confetti onto a colored Braille canvas with
// Bubble Tea and turns mouse input into shell pointer events:
//
//   - moving over the egg delivers enter/leave
//   - a left click on the egg (or Space/Enter) delivers click
//
// # Key Bindings
//
//	Space/Enter - Click the egg
//	X/Y         - Orbit the camera
//	+/-         - Zoom
//	T           - Cycle color themes
//	?           - Show help overlay
//	Q           - Quit
package viz
