// Package merge is the runtime support imported by code that merge-generator
// emits.
//
// A generated merger copies the updatable fields of a newer instance of a
// type into an older one:
//
//	var m merge.Merger[store.User] = store.UserMerger{}
//	err := m.Merge(oldUser, newUser)
//
// The generated registry maps a reflect.Type to the merger for that type and
// is built exactly once per process:
//
//	err := merge.Apply(registry.Registry(), oldUser, newUser)
package merge
