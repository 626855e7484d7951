// Package io provides JSON import and export for ancestor record trees.
//
// # JSON Format
//
// Each person is an object with a "data" member holding the record fields
// and an optional "parents" array of at most two nested persons, father
// first:
//
//	{
//	  "data": {
//	    "id": 1,
//	    "xref": "I1",
//	    "generation": 1,
//	    "name": "Johannes Wilhelm Müller",
//	    "firstNames": ["Johannes", "Wilhelm"],
//	    "lastNames": ["Müller"],
//	    "preferredName": "Wilhelm",
//	    "sex": "M",
//	    "birth": "12 MAR 1875",
//	    "timespan": "1875-1931"
//	  },
//	  "parents": [
//	    {"data": {"xref": "I2", "sex": "M"}},
//	    {"data": {"xref": "I3", "sex": "F"}}
//	  ]
//	}
//
// The flat form, with the record fields directly on the person object next
// to "parents", is accepted on import as well. Export always writes the
// enveloped form.
//
// # Import
//
// Use [ImportJSON] to read a tree from a file path, or [ReadJSON] to read
// from any io.Reader. Imported trees are normalized with
// [ancestry.Normalize] and checked with [ancestry.Validate]: missing IDs and
// generations are filled in, parents are put in father-before-mother order,
// and the right-to-left flags are derived from the name text when the file
// does not carry them.
//
// # Export
//
// Use [ExportJSON] to write a tree to a file, or [WriteJSON] to write to any
// io.Writer. A tree written by [WriteJSON] reads back identically.
package io
