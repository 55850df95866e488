// Package plan turns entity descriptions into merge units.
//
// Planning pipeline, per entity carrying the generate marker:
//  1. Resolve each field's accessor pair by naming convention
//  2. Classify the field: excluded, direct-field or accessor-pair
//  3. Collect the rules in field declaration order into a MergeUnit
//
// Units that are registry-eligible later become RegistryEntries, collected
// into an ordered set for the registry synthesizer.
package plan
