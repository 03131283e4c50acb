// Package component defines lifecycle-managed parts of a service and a
// registry that starts them in order, stops them in reverse and aggregates
// their health for the /health endpoint.
package component
