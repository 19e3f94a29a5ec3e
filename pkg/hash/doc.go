// Package hash provides short content digests for claude-sync's
// informational output. The 8-character digest printed after a
// download lets two runs be compared at a glance without diffing.
package hash
