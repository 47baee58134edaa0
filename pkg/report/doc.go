// Package report persists the summary of a secpad pass as a JSON file.
//
// The file is written atomically (temp file in the same directory, then
// rename), so readers never observe a partial report:
//
//	store := report.NewFileStore("/var/lib/secpad/last-run.json")
//	if err := store.Save(ctx, r); err != nil {
//	    ...
//	}
package report
