package gpudata

import "sync"

// Listener receives the render command stream a SceneBuilder produces.
// Implementations must be safe for concurrent use: fill batches for
// independent paths may be sent from multiple goroutines during the
// parallel tiling phase, before the single-threaded occlusion pass emits
// the rest of the stream.
type Listener interface {
	Send(cmd RenderCommand)
}

// ListenerFunc adapts a plain function to a Listener, the way
// http.HandlerFunc adapts a function to http.Handler.
type ListenerFunc func(RenderCommand)

// Send calls f(cmd).
func (f ListenerFunc) Send(cmd RenderCommand) { f(cmd) }

// CollectingListener accumulates every command it receives, in order.
// It is not safe for concurrent use without external synchronization;
// see SyncListener for a concurrent-safe wrapper.
type CollectingListener struct {
	Commands []RenderCommand
}

// Send appends cmd to Commands.
func (l *CollectingListener) Send(cmd RenderCommand) {
	l.Commands = append(l.Commands, cmd)
}

// SyncListener wraps a Listener with a mutex, for the parallel tiling
// phase's concurrent AddFills sends when the underlying Listener isn't
// already safe for concurrent use on its own.
type SyncListener struct {
	mu       sync.Mutex
	Listener Listener
}

// NewSyncListener wraps inner with a mutex.
func NewSyncListener(inner Listener) *SyncListener {
	return &SyncListener{Listener: inner}
}

// Send acquires the mutex and forwards cmd to the wrapped Listener.
func (l *SyncListener) Send(cmd RenderCommand) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Listener.Send(cmd)
}
