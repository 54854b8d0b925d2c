/*
Package observability turns engine lifecycle hooks into Prometheus metrics and
structured log lines.

Hooks built here are plain domain.LifecycleHooks values, so they plug into
najia.WithLifecycleHooks like any hand-written hook and can be chained with
Chain.
*/
package observability
