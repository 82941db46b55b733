package quiz

import (
	"reflect"
	"testing"
)

func testSet() QuizSet {
	return QuizSet{
		{ID: 1, Prompt: "Pick B", Choices: []string{"A", "B", "C", "D"}, Answer: "B"},
		{ID: 2, Prompt: "Pick G", Choices: []string{"E", "F", "G", "H"}, Answer: "G"},
	}
}

func TestScore_MixedResult(t *testing.T) {
	report := Score(testSet(), AnswerRecord{1: "B", 2: "F"})

	if report.Correct != 1 || report.Total != 2 {
		t.Fatalf("aggregate = %d/%d, want 1/2", report.Correct, report.Total)
	}
	if !report.Verdicts[0].Correct {
		t.Error("verdict 0 should be correct")
	}
	if report.Verdicts[1].Correct {
		t.Error("verdict 1 should be incorrect")
	}
	if report.Verdicts[1].Submitted != "F" || report.Verdicts[1].Answer != "G" {
		t.Errorf("verdict 1 = %+v, want submitted F, answer G", report.Verdicts[1])
	}
}

func TestScore_Deterministic(t *testing.T) {
	set := testSet()
	answers := AnswerRecord{1: "B", 2: "F"}

	first := Score(set, answers)
	second := Score(set, answers)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("reports differ:\n%+v\n%+v", first, second)
	}
}

func TestScore_UnansweredIsIncorrect(t *testing.T) {
	report := Score(testSet(), AnswerRecord{1: "B"})

	if report.Correct != 1 {
		t.Fatalf("Correct = %d, want 1", report.Correct)
	}
	v := report.Verdicts[1]
	if v.Correct || v.Submitted != "" {
		t.Errorf("unanswered verdict = %+v, want incorrect with empty submission", v)
	}
}

func TestScore_EmptySet(t *testing.T) {
	report := Score(nil, nil)
	if report.Total != 0 || report.Correct != 0 || len(report.Verdicts) != 0 {
		t.Errorf("report = %+v, want all-zero", report)
	}
	if !report.Perfect() {
		t.Error("empty report should be perfect (nothing to remediate)")
	}
}

func TestScore_VerdictsPreserveOrder(t *testing.T) {
	report := Score(testSet(), nil)
	if report.Verdicts[0].Prompt != "Pick B" || report.Verdicts[1].Prompt != "Pick G" {
		t.Errorf("verdict order broken: %+v", report.Verdicts)
	}
}

func TestWeakPrompts(t *testing.T) {
	report := Score(testSet(), AnswerRecord{1: "B", 2: "F"})
	weak := WeakPrompts(report)
	if !reflect.DeepEqual(weak, []string{"Pick G"}) {
		t.Errorf("weak = %v, want [Pick G]", weak)
	}
}

func TestWeakPrompts_PerfectScore(t *testing.T) {
	report := Score(testSet(), AnswerRecord{1: "B", 2: "G"})
	if weak := WeakPrompts(report); weak != nil {
		t.Errorf("weak = %v, want nil for a perfect score", weak)
	}
	if !report.Perfect() {
		t.Error("report should be perfect")
	}
}
