/*
Package ports defines the driving and driven ports (interfaces) of the najia engine.

These interfaces decouple the pure casting pipeline from its collaborators, so the same
engine can be served over HTTP or MCP and can persist readings in memory, Redis or SQLite.

# Key Interfaces

  - Caster: the three casting entry points consumed by adapters.
  - Journal: read access to stored readings.
  - ReadingStore: persistence of readings (memory, redis, sqlite adapters).
  - Entropy: the injected randomness used for coin casting.
*/
package ports
