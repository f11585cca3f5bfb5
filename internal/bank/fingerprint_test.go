package bank

import "testing"

func TestFingerprintStable(t *testing.T) {
	roles := map[string][]Question{
		"A": {{Text: "Q1", Options: []string{"x", "y"}, Answer: "x"}},
		"B": {{Text: "Q2", Options: []string{"x", "y"}, Answer: "y"}},
	}

	first := Fingerprint(roles)
	for i := 0; i < 10; i++ {
		if got := Fingerprint(roles); got != first {
			t.Fatalf("fingerprint unstable: %s vs %s", got, first)
		}
	}
}

func TestFingerprintChangesWithContent(t *testing.T) {
	base := map[string][]Question{
		"A": {{Text: "Q1", Options: []string{"x", "y"}, Answer: "x"}},
	}
	baseFP := Fingerprint(base)

	changedAnswer := map[string][]Question{
		"A": {{Text: "Q1", Options: []string{"x", "y"}, Answer: "y"}},
	}
	if Fingerprint(changedAnswer) == baseFP {
		t.Error("changing the answer should change the fingerprint")
	}

	changedText := map[string][]Question{
		"A": {{Text: "Q1 reworded", Options: []string{"x", "y"}, Answer: "x"}},
	}
	if Fingerprint(changedText) == baseFP {
		t.Error("changing the text should change the fingerprint")
	}

	changedRole := map[string][]Question{
		"B": {{Text: "Q1", Options: []string{"x", "y"}, Answer: "x"}},
	}
	if Fingerprint(changedRole) == baseFP {
		t.Error("renaming the role should change the fingerprint")
	}
}

func TestFingerprintEmpty(t *testing.T) {
	if Fingerprint(nil) != Fingerprint(map[string][]Question{}) {
		t.Error("nil and empty banks should share a fingerprint")
	}
}
