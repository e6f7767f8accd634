// Package catalog defines the inputs of the variant engine: variants, their
// defining specification values, selections, and the attribute domain derived
// from a variant list.
//
// Variants are immutable once handed to the engine. A catalog file is YAML:
//
//	product: macbook-pro
//	variants:
//	  - id: mbp-sg-512
//	    specs:
//	      - {name: Color, value: Space Gray, label: "Space Gray"}
//	      - {name: Storage, value: 512GB}
//	  - id: mbp-si-512
//	    # mapping shorthand, keeps document order
//	    specs:
//	      Color: Silver
//	      Storage: 512GB
//
// Variants without an id receive a generated UUID on load.
package catalog
