// Package retention enforces the retention policy on the quiz archive.
//
// The pruner deletes archived records older than the configured number of
// days. It runs on demand via Prune or on a cron schedule via Start, using
// standard 5-field cron expressions (github.com/robfig/cron/v3):
//
//	"0 3 * * *"    - daily at 3 AM
//	"0 */6 * * *"  - every 6 hours
//
// A retention of 0 days keeps history forever; an empty schedule disables
// the background job while leaving on-demand pruning available.
package retention
