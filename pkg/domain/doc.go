/*
Package domain contains the core models shared by the Spark engine, its ports
and its adapters.

It is free of I/O: themes are plain values, errors are sentinels or small
structured types, and observability is expressed as optional callbacks.

# Key Entities

  - Theme: a named token document that may extend another theme.
  - Hooks: callbacks fired when themes are resolved and stylesheets rendered.
  - ValidationError: the issues found while checking a theme set.
*/
package domain
