// Package archive records served quiz items for history and reporting.
//
// The recorder writes one row per served item through the storage layer.
// Recording is strictly best-effort: a missing store or a failed write is
// logged and swallowed, and the quiz response the client sees is never
// affected. Retention of the archive is enforced by the retention
// subpackage.
package archive
