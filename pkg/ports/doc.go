/*
Package ports defines the driven ports (interfaces) for the Spark engine.

These interfaces decouple theme resolution from where token documents live and
where rendered stylesheets are kept.

# Key Interfaces

  - TokenSource: lists and loads theme documents (e.g., from files or memory).
  - Watchable: notifies when a source's backing documents change.
  - StylesheetCache: stores rendered stylesheets (e.g., in memory or Redis).
  - ThemeEngine: the read surface consumed by the HTTP and MCP adapters.
*/
package ports
