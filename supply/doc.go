// Package supply parses supply-level readings.
//
// A reading is a short token made of a unit count followed by a single level suffix:
//
//	<units><level>
//	    units := [0-9]+            (must fit in uint32)
//	    level := [Ll] => 1, [Mm] => 2, [Hh] => 3, '?' => -1
//
// Two single-character tokens are special: "?" means the supply is unknown (-1, -1)
// and "-" or "0" means there is none (0, 0).
package supply
