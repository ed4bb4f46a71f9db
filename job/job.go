// Package job defines the unit of work consumed by interpolation workers.
package job

import (
	"time"

	"github.com/google/uuid"

	"github.com/BranchIntl/tweener/frame"
)

// Params carries the per-job interpolation parameters decided by the
// producer.
type Params struct {
	// DifferenceThreshold is the scene-change gate in [0,100]. Frame pairs
	// whose difference ratio meets or exceeds it are not interpolated.
	DifferenceThreshold float64 `json:"difference_threshold"`

	// Algorithm names the processor used to synthesize the in-between frame.
	Algorithm string `json:"algorithm"`
}

// Metadata describes a job's identity and provenance.
type Metadata struct {
	ID         string    `json:"id"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// Job is one frame pair to evaluate and, unless a scene change is detected,
// interpolate. Jobs are immutable once enqueued; ownership transfers to
// whichever worker dequeues them.
type Job struct {
	// FrameIndex is the 1-based, globally unique index of the pair. It alone
	// determines which output slots the job's results occupy.
	FrameIndex int `json:"frame_index"`

	// First is the earlier frame of the pair. It is nil only on a priming
	// job, which carries no interpolation work.
	First *frame.Frame `json:"first"`

	// Second is the later frame of the pair.
	Second *frame.Frame `json:"second"`

	Params   Params   `json:"params"`
	Metadata Metadata `json:"metadata"`
}

// New creates a job for the given frame pair.
func New(frameIndex int, first, second *frame.Frame, params Params) *Job {
	return &Job{
		FrameIndex: frameIndex,
		First:      first,
		Second:     second,
		Params:     params,
		Metadata: Metadata{
			ID:         uuid.New().String(),
			EnqueuedAt: time.Now(),
		},
	}
}

// Priming creates the sequence's first job. Its pair has no first frame,
// which tells workers to skip it without interpolating.
func Priming(second *frame.Frame, params Params) *Job {
	return New(1, nil, second, params)
}

// IsPriming reports whether the job is a priming job.
func (j *Job) IsPriming() bool {
	return j.First == nil
}
