// Package secpad normalizes section file names for use as a library.
//
// Section files are named Sec<n>.js or Sec<n>_<m>.js. Normalization pads n to
// at least two digits and leaves m as a plain integer:
//
//	Sec3.js   -> Sec03.js
//	Sec3_1.js -> Sec03_1.js
//	Sec10.js     unchanged
//
// # Basic Usage
//
// Compute the renames without touching the disk:
//
//	plans := secpad.Plan([]string{"Sec3.js", "notes.txt"})
//
// Or normalize a directory in place:
//
//	report, err := secpad.Run(ctx, "/path/to/sections",
//	    secpad.WithLogger(logger),
//	    secpad.WithPolicy(secpad.PolicyContinue),
//	)
//
// Existing files are never overwritten. A rename that would replace one
// fails with an error matching [ErrDestinationExists].
package secpad
