// Package warehouse holds stock-keeping entities.
package warehouse
