// Package form flattens nested request parameters into ordered
// application/x-www-form-urlencoded pairs.
//
// Parameters are held in [Fields], an ordered and immutable mapping from key
// to [Value]. A Value is exactly one of a scalar string, a list of strings or
// a list of nested Fields. [Encode] walks the structure depth-first and names
// nested entries with PHP-style bracket notation:
//
//	fields := form.New().
//	    Set("message", form.String("hi")).
//	    Set("number", form.Strings("111", "222"))
//
//	form.Encode(fields, "").Encode()
//	// message=hi&number%5B0%5D=111&number%5B1%5D=222
//
// The order of the encoded pairs always follows the insertion order of the
// Fields, recursively.
package form
