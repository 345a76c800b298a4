// Package errors provides coded, located error messages for the domify CLI.
//
// Document and configuration problems are reported with a stable code, the
// position in the input file and a hint:
//
//	err := errors.New("D002").
//	    WithLocation("page.yaml", 7, 5).
//	    WithDetail(`unknown element "dvi"`).
//	    WithSuggestion(`run "domify kinds" to list element names`)
//
//	fmt.Print(err.Format())
//	// ERROR D002: Unknown element
//	//
//	//   page.yaml:7:5
//	//
//	//     5 │   children:
//	//     6 │     - tag: p
//	//   → 7 │     - tag: dvi
//	//       │       ^
//	//
//	//   unknown element "dvi"
//	//
//	//   Hint: run "domify kinds" to list element names
package errors
