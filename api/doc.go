// Package api binds the transcript resolver to its transports: gin routes
// on the service engine, a net/http function handler, an API-gateway style
// event handler and an MCP tool. Each binding only translates its native
// request into a transcript.Request and writes the envelope back.
package api
