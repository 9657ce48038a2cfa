package pipeline

// Stage is a run's position in Idle → Enumerated → Planned → Validated →
// {Applied | Rejected}. A dry run stops at Validated.
type Stage int

const (
	StageIdle Stage = iota
	StageEnumerated
	StagePlanned
	StageValidated
	StageApplied
	StageRejected
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageEnumerated:
		return "enumerated"
	case StagePlanned:
		return "planned"
	case StageValidated:
		return "validated"
	case StageApplied:
		return "applied"
	case StageRejected:
		return "rejected"
	default:
		return "unknown"
	}
}
