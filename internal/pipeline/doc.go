// Package pipeline runs generation in two passes.
//
// Pass A plans every marked entity, emits its merger and records the
// registry-eligible ones in a Manifest. Pass B collects registry entries from
// discoverers and the manifest, then emits the registry exactly once.
package pipeline
