// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch runs a list of conversion jobs described in a YAML file.
// The file is declarative: each job names an operation and its parameters;
// the dispatcher that executes a job is injected so the package stays free
// of the individual pipeline dependencies.
package batch

import (
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/file-forge/pkg/types"
)

// Job is one conversion in a job file. Fields beyond Op apply per
// operation; unused ones stay at their zero value.
type Job struct {
	Op      types.Operation `yaml:"op"`
	Input   string          `yaml:"input,omitempty"`
	Inputs  []string        `yaml:"inputs,omitempty"` // doc-merge only
	Output  string          `yaml:"output,omitempty"`
	Format  string          `yaml:"format,omitempty"`
	Quality int             `yaml:"quality,omitempty"`

	Width          int   `yaml:"width,omitempty"`
	Height         int   `yaml:"height,omitempty"`
	MaxWidth       int   `yaml:"max_width,omitempty"`
	MaxHeight      int   `yaml:"max_height,omitempty"`
	MaintainAspect *bool `yaml:"maintain_aspect,omitempty"`
	Angle          int   `yaml:"angle,omitempty"`

	StartPage int `yaml:"start_page,omitempty"`
	EndPage   int `yaml:"end_page,omitempty"`
}

// File is the on-disk representation of a batch run.
type File struct {
	Jobs []Job `yaml:"jobs"`
}

// Load reads and parses a YAML job file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing job file %s: %w", path, err)
	}
	if len(f.Jobs) == 0 {
		return nil, fmt.Errorf("job file %s contains no jobs", path)
	}
	return &f, nil
}

// Dispatch executes one job and returns the output path.
type Dispatch func(Job) (string, error)

// Result holds the outcome of a batch run.
type Result struct {
	Succeeded int
	Failed    int
}

// Total returns the total number of jobs processed.
func (r Result) Total() int {
	return r.Succeeded + r.Failed
}

// HasFailures reports whether any job failed.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Run executes every job in order through dispatch, printing per-job status
// to w and returning a summary. A failed job does not stop the run.
func Run(f *File, dispatch Dispatch, w io.Writer) Result {
	var result Result
	for i, job := range f.Jobs {
		out, err := dispatch(job)
		if err != nil {
			fmt.Fprintf(w, "failed:  job %d (%s): %v\n", i+1, job.Op, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "done:    job %d (%s): %s\n", i+1, job.Op, out)
		result.Succeeded++
	}
	fmt.Fprintf(w, "\nBatch summary: %d succeeded, %d failed (total: %d)\n",
		result.Succeeded, result.Failed, result.Total())
	return result
}
