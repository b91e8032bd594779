// Package recording captures a drawn text scene as typed commands that can
// be inspected and replayed.
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: a scene.Canvas and grapheme.GlyphPlacer that stores calls
//   - Recording: the immutable command list plus its resources
//   - Backend: the target a Recording is played back to
//
// # Basic Usage
//
//	rec := recording.NewRecorder(100, 50)
//	content.Draw(rec)
//	r := rec.Finish()
//
//	backend, _ := recording.NewBackend("counting")
//	r.Playback(backend)
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern:
//
//	func init() {
//	    recording.Register("svg", func() recording.Backend {
//	        return newSVGBackend()
//	    })
//	}
//
// # Resource Management
//
// Geometries are cloned into a ResourcePool when recorded, so warping or
// merging the scene afterwards does not change a finished Recording.
// Fills and strokes are stored once per distinct value and referenced by
// index from the commands.
package recording
