package lpapi

import (
	"context"
	"fmt"
)

// JobOptions describes the label of a print job. Lengths are millimeters.
type JobOptions struct {
	Width       float64     // required, label width
	Height      float64     // defaults to Width
	GapLength   float64     // gap between labels, defaults to 0
	Orientation Orientation // page rotation
	JobName     string      // defaults to DefaultJobName
}

func (o JobOptions) params() (Params, error) {
	if o.Width <= 0 {
		return nil, missing(ActionStartJob, "width")
	}
	if err := checkLengths(ActionStartJob,
		length{field: "width", mm: o.Width},
		length{field: "height", mm: o.Height},
		length{field: "gapLen", mm: o.GapLength},
	); err != nil {
		return nil, err
	}

	width := Hundredths(o.Width)
	p := Params{
		"width":       width,
		"height":      width,
		"gapLen":      Hundredths(o.GapLength),
		"orientation": int(o.Orientation),
		"jobName":     DefaultJobName,
		"scaleUnit":   1,
	}
	if o.Height != 0 {
		p["height"] = Hundredths(o.Height)
	}
	if o.JobName != "" {
		p["jobName"] = o.JobName
	}

	return p, nil
}

// StartJob starts a print job. A printer is opened by the service if none is,
// and any uncommitted job is discarded.
func (c *Client) StartJob(ctx context.Context, opts JobOptions) (bool, error) {
	params, err := opts.params()
	if err != nil {
		return false, err
	}

	resp, err := c.request(ctx, ActionStartJob, params)
	if err != nil {
		return false, fmt.Errorf("starting job: %w", err)
	}

	return resp.StatusCode == 0, nil
}

// AbortJob discards the pending job data. Parameter settings are kept.
func (c *Client) AbortJob(ctx context.Context) error {
	if err := c.do(ctx, ActionAbortJob, nil); err != nil {
		return fmt.Errorf("aborting job: %w", err)
	}

	return nil
}

// CommitJob submits the job for printing.
func (c *Client) CommitJob(ctx context.Context) error {
	if err := c.do(ctx, ActionCommitJob, nil); err != nil {
		return fmt.Errorf("committing job: %w", err)
	}

	return nil
}

// StartPage starts a page. Without a prior StartJob the service starts a
// job itself and EndPage then commits it.
func (c *Client) StartPage(ctx context.Context) error {
	if err := c.do(ctx, ActionStartPage, nil); err != nil {
		return fmt.Errorf("starting page: %w", err)
	}

	return nil
}

// EndPage ends the current page.
func (c *Client) EndPage(ctx context.Context) error {
	if err := c.do(ctx, ActionEndPage, nil); err != nil {
		return fmt.Errorf("ending page: %w", err)
	}

	return nil
}
