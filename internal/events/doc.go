// Package events decouples task completion from result delivery.
// The runner emits a TaskCompletedEvent after each terminal write;
// handlers such as the webhook dispatcher subscribe to it.
package events
