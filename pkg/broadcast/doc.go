// Package broadcast provides a small generic publish-subscribe
// primitive used to fan client-state changes out to interested
// consumers.
//
// A Broadcaster delivers each value to every active Subscriber.
// Delivery is non-blocking: a subscriber that stops draining its
// channel misses values and is eventually dropped, so one stalled
// consumer can never stall the writer. Subscriptions are scoped to a
// context and cleaned up on cancellation.
//
//	b := broadcast.NewMemory[string](16)
//	sub := b.Subscribe(ctx)
//	go func() {
//		for v := range sub.Receive() {
//			// react to v
//		}
//	}()
//	b.Broadcast("language")
package broadcast
