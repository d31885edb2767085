// Package ingestion provides pipeline orchestration for loading catalog data.
//
// The Pipeline type manages the ingestion workflow for catalog items, including:
//   - Validating products and their FAQ entries
//   - Writing them to storage concurrently through a worker pool
//   - Retrying transient storage failures with exponential backoff
//
// Progress can be observed through a ProgressTracker, which is useful for
// seeding and bulk-import commands.
package ingestion
