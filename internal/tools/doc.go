// Package tools exposes the Google Workspace Directory operations as MCP tools.
//
// Every handler parses its arguments into a request struct, rejects invalid
// input before any remote call, calls the directory client exactly once and
// renders the answer as indented JSON. Failures are returned as MCP error
// results carrying a small JSON object with the error kind, the upstream
// status and message, and an optional hint.
package tools
