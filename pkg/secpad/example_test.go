package secpad_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bft-labs/secpad/pkg/secpad"
)

func ExamplePlan() {
	plans := secpad.Plan([]string{"Sec3.js", "Sec3_1.js", "Sec10.js", "notes.txt", "Sec_bad.js"})
	for _, p := range plans {
		fmt.Printf("%s -> %s\n", p.Old, p.New)
	}
	// Output:
	// Sec3.js -> Sec03.js
	// Sec3_1.js -> Sec03_1.js
}

func ExampleClassify() {
	s, ok := secpad.Classify("Sec7_02.js")
	fmt.Println(ok, s.Base, s.Suffix, secpad.Normalize(s))
	// Output: true 7 2 Sec07_2.js
}

func ExampleRun() {
	dir, err := os.MkdirTemp("", "secpad-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	for _, name := range []string{"Sec1.js", "Sec2_4.js", "Sec12.js"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			fmt.Println(err)
			return
		}
	}

	report, err := secpad.Run(context.Background(), dir, secpad.WithOutput(os.Stdout))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("renamed %d of %d section files\n", report.Renamed, report.Matched)
	// Output:
	// Renombrando: Sec1.js → Sec01.js
	// Renombrando: Sec2_4.js → Sec02_4.js
	// ✅ Renombrado completo con ceros a la izquierda.
	// renamed 2 of 3 section files
}
