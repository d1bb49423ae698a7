package events

import (
	"testing"

	"github.com/loomworks/quarry/internal/corpus"
)

func TestBuildCompletedEvent(t *testing.T) {
	m := corpus.NewManifest()
	m.AddOutput("out/conversational_corpus.txt", 120)
	m.AddOutput("out/dialogue_patterns.txt", 75)
	m.AddWarning("skip out/empty.txt: empty file")
	m.Finish()

	evt := buildCompletedEvent(m)

	if evt.RunID != m.RunID.String() {
		t.Errorf("run_id = %q, want %q", evt.RunID, m.RunID.String())
	}
	if evt.TotalLines != 195 {
		t.Errorf("total_lines = %d, want 195", evt.TotalLines)
	}
	if len(evt.Outputs) != 2 || evt.Outputs[0] != "out/conversational_corpus.txt" {
		t.Errorf("outputs = %v", evt.Outputs)
	}
	if evt.Warnings != 1 {
		t.Errorf("warnings = %d, want 1", evt.Warnings)
	}
	if !evt.FinishedAt.Equal(m.FinishedAt) {
		t.Errorf("finished_at = %v, want %v", evt.FinishedAt, m.FinishedAt)
	}
}
