// Package editor holds the state shared across buffers: the ordered
// buffer list, the current buffer, the process-wide kill ring, and the
// echo-area message. File access lives here too; the engine packages
// below never touch the filesystem except through a buffer's own
// Save/FromFile.
package editor
