// Package json implements the wire codec used by out-of-process queues.
// Jobs are encoded as a JSON envelope; pixel buffers ride as base64 through
// encoding/json's []byte handling.
package json

import (
	"encoding/json"

	"github.com/BranchIntl/tweener/errors"
	"github.com/BranchIntl/tweener/job"
)

// Serializer converts jobs to and from JSON bytes.
type Serializer struct{}

// NewSerializer creates a new JSON serializer
func NewSerializer() *Serializer {
	return &Serializer{}
}

// Serialize converts a job to JSON bytes
func (s *Serializer) Serialize(j *job.Job) ([]byte, error) {
	data, err := json.Marshal(j)
	if err != nil {
		return nil, errors.NewSerializationError(s.GetFormat(), err)
	}
	return data, nil
}

// Deserialize converts JSON bytes to a job
func (s *Serializer) Deserialize(data []byte) (*job.Job, error) {
	var j job.Job
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, errors.NewSerializationError(s.GetFormat(), err)
	}
	return &j, nil
}

// GetFormat returns the serialization format name
func (s *Serializer) GetFormat() string {
	return "json"
}
