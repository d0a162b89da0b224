// Package transport serves an MCP server over stdio, streamable HTTP or an
// AWS Lambda Function URL.
package transport
