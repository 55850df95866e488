// Package schema defines the language-neutral description of entity types
// that merge-generator consumes, and reads it from YAML files.
//
// A schema can be written by hand or produced by a front-end such as the Go
// package analyzer in internal/analyze. The generation core only ever sees
// this model.
//
// # File format
//
//	version: "1"
//	entities:
//	  - type: example.com/app/store.User
//	    dir: ./store
//	    nesting: top-level   # top-level | static | inner | local | anonymous
//	    generate: true       # defaults to true
//	    fields:
//	      - name: mName
//	        type: string
//	        visibility: private  # package (default) | public | protected | private
//	      - name: isActive
//	        type: bool
//	      - name: age
//	        type: int
//	        skip: true
//	      - name: id
//	        type: string
//	        final: true
//	      - name: avatar
//	        type: "*Image"
//	        omit_null: true
//	    methods: [getName, setName]
//
// Field booleans and nullability are inferred from the type expression;
// "boolean: true" and "nullable: true" force them for named types whose
// underlying type is bool or can hold nil.
package schema
