// Package monsoon collects and extracts news articles about monsoon-season
// climate impacts across Indian states and union territories, in multiple
// regional languages, and deduplicates them into quality-tiered output.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, sqlite/) or their
// concern (search/, extract/, dedup/, collect/).
package monsoon
