// Package notify broadcasts alarm lifecycle transitions.
//
// LogNotifier writes them to the structured log and Webhook posts them as
// JSON to an HTTP endpoint. Command starts an external program when an alarm
// rings. Multi fans one notification out to several notifiers.
package notify
