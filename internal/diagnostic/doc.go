// Package diagnostic provides structured errors, warnings and infos for a
// merge-generator run.
//
// Generation failures are local to the entity that failed: they are recorded
// here with the entity's identity and never abort the remaining units.
package diagnostic
