package ports

import "go.trai.ch/bytesum/internal/core/domain"

// ProgressListener receives scan progress events.
// Implementations must be safe for concurrent use: FileProcessed events arrive from many goroutines.
//
//go:generate go run go.uber.org/mock/mockgen -source=listener.go -destination=mocks/mock_listener.go -package=mocks
type ProgressListener interface {
	OnEvent(event domain.Event)
}

// ListenerFunc adapts a function to a ProgressListener.
type ListenerFunc func(event domain.Event)

// OnEvent calls f(event).
func (f ListenerFunc) OnEvent(event domain.Event) {
	f(event)
}

// ChannelListener forwards events to a channel.
// Sends block, so the consumer must keep draining the channel until the scan returns.
type ChannelListener chan<- domain.Event

// OnEvent sends event on the channel.
func (c ChannelListener) OnEvent(event domain.Event) {
	c <- event
}
