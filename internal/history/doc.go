// Package history provides undo/redo for the task store.
//
// Every mutation of the store is described by an Action. There are three
// kinds, each carrying exactly the snapshots it needs:
//   - Add: the task that was appended
//   - Delete: the task that was removed and the index it occupied
//   - Update: the task before and after the change
//
// Actions hold task values, not references, so later store mutations never
// change a recorded entry.
//
// # History Stacks
//
// History keeps an undo stack and a redo stack:
//
//	h := New()
//	h.Record(Add{Task: t})  // clears the redo stack
//
//	h.Undo(s)  // pop undo, push redo, apply the inverse
//	h.Redo(s)  // pop redo, push undo, apply the forward effect
//
// Undo or redo on an empty stack returns ErrNothingToUndo or ErrNothingToRedo.
// If an action cannot be applied to the store, the history and the store have
// diverged and the error wraps ErrInconsistent.
//
// History is not safe for concurrent use. Callers that share a store and a
// history between goroutines must guard both with one lock.
package history
