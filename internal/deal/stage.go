package deal

// Stage is a deal's position in the sales funnel. Stage strings
// outside the seven known values are carried through untouched; they
// match no stage filter and weigh 0 in any forecast.
type Stage string

const (
	StageLead          Stage = "Lead"
	StageQualification Stage = "Qualification"
	StageDiscovery     Stage = "Discovery"
	StageProposalSent  Stage = "Proposal Sent"
	StageNegotiation   Stage = "Negotiation"
	StageClosedWon     Stage = "Closed Won"
	StageClosedLost    Stage = "Closed Lost"
)

// Stages lists the known stages in funnel order.
var Stages = []Stage{
	StageLead,
	StageQualification,
	StageDiscovery,
	StageProposalSent,
	StageNegotiation,
	StageClosedWon,
	StageClosedLost,
}

// OpenStages lists the five non-terminal stages in funnel order.
var OpenStages = []Stage{
	StageLead,
	StageQualification,
	StageDiscovery,
	StageProposalSent,
	StageNegotiation,
}

// Open reports whether the stage is one of the five non-terminal stages.
// Unknown stage strings are neither open nor terminal.
func (s Stage) Open() bool {
	switch s {
	case StageLead, StageQualification, StageDiscovery, StageProposalSent, StageNegotiation:
		return true
	}
	return false
}

// Terminal reports whether the deal is closed, won or lost.
func (s Stage) Terminal() bool {
	return s == StageClosedWon || s == StageClosedLost
}

// Probability is the historical close probability used to weight
// pipeline value. Unknown stages weigh 0.
func (s Stage) Probability() float64 {
	switch s {
	case StageLead:
		return 0.1
	case StageQualification:
		return 0.2
	case StageDiscovery:
		return 0.4
	case StageProposalSent:
		return 0.6
	case StageNegotiation:
		return 0.8
	case StageClosedWon:
		return 1.0
	case StageClosedLost:
		return 0.0
	default:
		return 0
	}
}
