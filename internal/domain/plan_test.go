package domain

import (
	"reflect"
	"testing"
)

func TestPlan_Scenario(t *testing.T) {
	entries := []string{"Sec3.js", "Sec3_1.js", "Sec10.js", "notes.txt", "Sec_bad.js"}

	got := Plan(entries)
	want := []RenamePlan{
		{Old: "Sec3.js", New: "Sec03.js"},
		{Old: "Sec3_1.js", New: "Sec03_1.js"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Plan() = %+v, want %+v", got, want)
	}
}

func TestPlan(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    []RenamePlan
	}{
		{
			name:    "empty directory",
			entries: nil,
			want:    nil,
		},
		{
			name:    "already normalized is a no-op",
			entries: []string{"Sec03.js", "Sec03_1.js", "Sec123.js"},
			want:    nil,
		},
		{
			name:    "case variant extension excluded",
			entries: []string{"Sec3.JS", "Sec3.Js"},
			want:    nil,
		},
		{
			name:    "suffix padding stripped",
			entries: []string{"Sec03_07.js"},
			want:    []RenamePlan{{Old: "Sec03_07.js", New: "Sec03_7.js"}},
		},
		{
			name:    "over padded base shortened",
			entries: []string{"Sec007.js"},
			want:    []RenamePlan{{Old: "Sec007.js", New: "Sec07.js"}},
		},
		{
			name:    "numbers wider than 64 bits",
			entries: []string{"Sec0018446744073709551616.js", "Sec3_018446744073709551616.js"},
			want: []RenamePlan{
				{Old: "Sec0018446744073709551616.js", New: "Sec18446744073709551616.js"},
				{Old: "Sec3_018446744073709551616.js", New: "Sec03_18446744073709551616.js"},
			},
		},
		{
			name:    "order preserved",
			entries: []string{"Sec9.js", "Sec1.js", "Sec5_2.js"},
			want: []RenamePlan{
				{Old: "Sec9.js", New: "Sec09.js"},
				{Old: "Sec1.js", New: "Sec01.js"},
				{Old: "Sec5_2.js", New: "Sec05_2.js"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Plan(tt.entries)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Plan() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPlan_NormalizedNamesProduceNoPlans(t *testing.T) {
	entries := []string{"Sec3.js", "Sec3_1.js", "Sec0009_0002.js", "Sec77.js"}

	var normalized []string
	for _, p := range Plan(entries) {
		normalized = append(normalized, p.New)
	}
	if again := Plan(normalized); len(again) != 0 {
		t.Errorf("Plan(normalized) = %+v, want none", again)
	}
}

func TestAnalyze_Stats(t *testing.T) {
	entries := []string{"Sec3.js", "Sec03.js", "Sec3_1.js", "notes.txt", "Sec_bad.js", "README.md"}

	plans, stats := Analyze(entries)
	if len(plans) != 2 {
		t.Fatalf("len(plans) = %d, want 2", len(plans))
	}
	want := PlanStats{Scanned: 6, Matched: 3, NoOp: 1}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
}

func TestReport_Clean(t *testing.T) {
	r := Report{Planned: 2, Renamed: 2}
	if !r.Clean() {
		t.Error("expected clean report")
	}

	r.AddFailure(Failure{Old: "Sec3.js", New: "Sec03.js", Code: "DESTINATION_EXISTS"})
	if r.Clean() {
		t.Error("expected report with failure to be unclean")
	}
	if r.Failed != 1 || len(r.Failures) != 1 {
		t.Errorf("Failed = %d, len(Failures) = %d, want 1, 1", r.Failed, len(r.Failures))
	}
}
