// Package gen renders merge units and registry entries into Go source.
//
// Code is built with jennifer and formatted with go/format. Output is
// deterministic: statements follow the rule order of each unit and registry
// entries keep their insertion order.
//
// Generated shapes:
//   - one <Entity>Merger type per unit, implementing merge.Merger[<Entity>]
//   - one registry file exposing a build-once *merge.Registry
package gen
