package deal

import "testing"

func TestStageProbability(t *testing.T) {
	tests := []struct {
		stage    Stage
		expected float64
	}{
		{StageLead, 0.1},
		{StageQualification, 0.2},
		{StageDiscovery, 0.4},
		{StageProposalSent, 0.6},
		{StageNegotiation, 0.8},
		{StageClosedWon, 1.0},
		{StageClosedLost, 0.0},
		{Stage("Renewal"), 0},
		{Stage(""), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			if got := tt.stage.Probability(); got != tt.expected {
				t.Errorf("expected probability %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestStagePartition(t *testing.T) {
	for _, s := range Stages {
		if s.Open() == s.Terminal() {
			t.Errorf("stage %q must be exactly one of open or terminal", s)
		}
	}

	unknown := Stage("Stalled")
	if unknown.Open() || unknown.Terminal() {
		t.Errorf("unknown stage %q must be neither open nor terminal", unknown)
	}
}

func TestOpenStagesOrder(t *testing.T) {
	if len(OpenStages) != 5 {
		t.Fatalf("expected 5 open stages, got %d", len(OpenStages))
	}
	for i, s := range OpenStages {
		if s != Stages[i] {
			t.Errorf("open stage %d: expected %q, got %q", i, Stages[i], s)
		}
	}
}
