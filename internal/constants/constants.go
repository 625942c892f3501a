package constants

// DefaultPipelinePath is where the pipeline definition is looked up inside a
// checkout when the run does not name one.
const DefaultPipelinePath = ".circleci/config.yml"

type RunStatus string

const (
	RunStatusPending RunStatus = "pending"
	RunStatusRunning RunStatus = "running"
	RunStatusFailed  RunStatus = "failed"
	RunStatusSuccess RunStatus = "success"
)

func (s RunStatus) String() string {
	return string(s)
}

type StepStatus string

const (
	StepStatusPending StepStatus = "pending"
	StepStatusRunning StepStatus = "running"
	StepStatusFailed  StepStatus = "failed"
	StepStatusSuccess StepStatus = "success"
	StepStatusSkipped StepStatus = "skipped"
)

func (s StepStatus) String() string {
	return string(s)
}
