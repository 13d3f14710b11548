// Package harness stress-tests a shared account by running rounds of
// paired deposit and withdraw workers against it. Each round joins on a
// batch barrier that drains every worker before the balance is read, so
// observations are never taken mid-round. Worker failures are collected
// into a composite error at the join point rather than surfaced
// first-only.
package harness
