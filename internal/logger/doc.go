// Package logger wraps zap for the alarm daemon and its CLI:
//   - a global sugared logger with a console encoder and an atomic level,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and convenience functions (Infof, ErrorKV, etc.).
//
// Services take a context and log through the logger stored in it, so alarm
// ids and component names ride along with every entry.
package logger
