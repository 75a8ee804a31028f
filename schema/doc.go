// Package schema provides the field declarations chart components use to
// describe their data, with YAML loading and validation.
//
// A schema file looks like:
//
//	type: object
//	entries:
//	  - key: label
//	    type: string
//	    mappings: [category, name]
//	  - key: value
//	    type: number
//	    mappings: [count, percentage]
//	  - key: children
//	    type: array
//	    hierarchy: true
//
// # Mapping order
//
// For each entry, in declaration order, a source key is picked by:
//  1. the exact key
//  2. the first alias in mappings that is still unclaimed
//  3. the first unclaimed source key whose value has the declared type
//
// Every source key is claimed by at most one entry, so the earlier entry
// wins when several could match.
package schema
