package conformance

import "testing"

func TestScenarios(t *testing.T) {
	scenarios, err := LoadDir("testdata")
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(scenarios) == 0 {
		t.Fatalf("expected at least one scenario fixture")
	}

	runner := NewRunner()
	for _, s := range scenarios {
		s := s
		t.Run(s.Name, func(t *testing.T) {
			if err := runner.Run(s); err != nil {
				t.Fatal(err)
			}
		})
	}
}
