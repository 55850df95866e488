// Package registry exposes the merger registry of the store and warehouse
// packages.
package registry

//go:generate go run merge-generator/cmd/merge-generator gen --config ../merge-generator.yaml --dir ..
