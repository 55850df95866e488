// Package store holds order-taking entities. The *_merger.go files are
// generated from the //merge:generate declarations.
package store
