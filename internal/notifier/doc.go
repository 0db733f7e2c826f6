// Package notifier publishes created resources to a message channel.
//
// A [Notifier] serializes a value to indented JSON and hands it to a
// [Publisher]. Notification is best-effort: every failure is logged and,
// when a [DeadLetterSink] is configured, the payload is parked there.
// Callers never see an error.
//
// [NewNotifier] builds the Redis backed variant from configuration; without a
// Redis address the payloads are only logged.
package notifier
