// Package scene wires the egg together and defines the frame contract a
// renderer drives.
//
// A renderer delivers pointer events with [Scene.Pointer] and calls
// [Scene.Tick] once per rendered frame. Pointer events are applied as they
// arrive, so a click is visible on the next tick at the latest. Tick then
// advances the hinge spring and every particle, in that order, and copies
// the results into whatever transforms the renderer attached.
//
//	sc, _ := scene.New(scene.DefaultOptions())
//	sc.Pointer(shell.Click)
//	info := sc.Tick(1.0 / 60)
package scene
