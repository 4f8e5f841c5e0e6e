package provision

import (
	"fmt"
	"strings"
	"time"
)

// Step is a stage of a provisioning run
type Step string

const (
	StepLoadArtifacts      Step = "load-artifacts"
	StepAuthenticate       Step = "authenticate"
	StepSelectSubscription Step = "select-subscription"
	StepCreateGroup        Step = "create-group"
	StepCreateStorage      Step = "create-storage"
	StepGetKeys            Step = "get-keys"
	StepCreateContainer    Step = "create-container"
	StepSetPermissions     Step = "set-permissions"
	StepUpload             Step = "upload"
	StepDeploy             Step = "deploy"
	StepConfirm            Step = "wait-for-input"
	StepDeleteGroup        Step = "delete-group"
)

type StepResult int

const (
	InProgress StepResult = iota
	Success
	Fail
	Skipped
)

func (r StepResult) String() string {
	return [...]string{"INPROGRESS", "SUCCESS", "FAIL", "SKIPPED"}[r]
}

// StepRecord is the outcome of a single step
type StepRecord struct {
	Step     Step
	Result   StepResult
	Message  string
	Duration time.Duration
}

// TeardownStatus describes what happened to the resource group at the end of a run
type TeardownStatus int

const (
	// TeardownPending means the run stopped before teardown was considered
	TeardownPending TeardownStatus = iota
	// TeardownCompleted means the resource group was deleted
	TeardownCompleted
	// TeardownDeclined means the operator chose to keep the resources
	TeardownDeclined
	// TeardownSkipped means a failed deployment was left in place
	TeardownSkipped
)

func (t TeardownStatus) String() string {
	return [...]string{"PENDING", "COMPLETED", "DECLINED", "SKIPPED"}[t]
}

type recorder struct {
	records []StepRecord
	started map[Step]time.Time
	now     func() time.Time
}

func newRecorder() *recorder {
	return &recorder{started: map[Step]time.Time{}, now: time.Now}
}

func (r *recorder) start(step Step) {
	r.started[step] = r.now()
}

func (r *recorder) finish(step Step, err error) {
	record := StepRecord{Step: step, Result: Success, Duration: r.now().Sub(r.started[step])}
	if err != nil {
		record.Result = Fail
		record.Message = err.Error()
	}

	r.records = append(r.records, record)
}

func (r *recorder) skip(step Step, message string) {
	r.records = append(r.records, StepRecord{Step: step, Result: Skipped, Message: message})
}

// Summary renders a one line outcome of the run, e.g.
// "SUCCESS: 12 steps succeeded. Resource group myResourceGroup teardown COMPLETED."
func (res Result) Summary() string {
	var failures, skipped []string
	succeeded := 0

	for _, record := range res.Steps {
		switch record.Result {
		case Success:
			succeeded++
		case Fail:
			failures = append(failures, string(record.Step))
		case Skipped:
			skipped = append(skipped, string(record.Step))
		}
	}

	result := Success
	if len(failures) > 0 {
		result = Fail
	}

	msg := fmt.Sprintf("%s: %d steps succeeded.", result, succeeded)

	if len(failures) > 0 {
		msg += fmt.Sprintf(" Failed steps: %s.", strings.Join(failures, ", "))
	}

	if len(skipped) > 0 {
		msg += fmt.Sprintf(" Skipped steps: %s.", strings.Join(skipped, ", "))
	}

	if res.ResourceGroup.Name != "" {
		msg += fmt.Sprintf(" Resource group %s teardown %s.", res.ResourceGroup.Name, res.Teardown)
	}

	return msg
}
