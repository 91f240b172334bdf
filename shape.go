package lpapi

import (
	"context"
	"fmt"
)

// ShapeOptions describes a rectangle or ellipse. An unset Height draws a
// square or a circle.
type ShapeOptions struct {
	Box
	LineWidth float64 // outline width, defaults to DefaultLineWidth
}

// RoundRectangleOptions describes a rounded rectangle.
type RoundRectangleOptions struct {
	ShapeOptions
	Corners Corners
}

// DrawRectangle prints a rectangle outline.
func (c *Client) DrawRectangle(ctx context.Context, opts ShapeOptions) error {
	return c.drawShape(ctx, ActionDrawRectangle, opts.lengths(), opts.outline())
}

// FillRectangle prints a filled rectangle.
func (c *Client) FillRectangle(ctx context.Context, opts ShapeOptions) error {
	return c.drawShape(ctx, ActionFillRectangle, opts.Box.lengths(), opts.Box.params(true))
}

// DrawRoundRectangle prints a rounded rectangle outline.
func (c *Client) DrawRoundRectangle(ctx context.Context, opts RoundRectangleOptions) error {
	return c.drawShape(ctx, ActionDrawRoundRectangle, append(opts.ShapeOptions.lengths(), opts.Corners.lengths()...), opts.withCorners(opts.outline()))
}

// FillRoundRectangle prints a filled rounded rectangle.
func (c *Client) FillRoundRectangle(ctx context.Context, opts RoundRectangleOptions) error {
	return c.drawShape(ctx, ActionFillRoundRectangle, append(opts.Box.lengths(), opts.Corners.lengths()...), opts.withCorners(opts.Box.params(true)))
}

// DrawEllipse prints an ellipse outline inside the box.
func (c *Client) DrawEllipse(ctx context.Context, opts ShapeOptions) error {
	return c.drawShape(ctx, ActionDrawEllipse, opts.lengths(), opts.outline())
}

// FillEllipse prints a filled ellipse inside the box.
func (c *Client) FillEllipse(ctx context.Context, opts ShapeOptions) error {
	return c.drawShape(ctx, ActionFillEllipse, opts.Box.lengths(), opts.Box.params(true))
}

func (o ShapeOptions) lengths() []length {
	return append(o.Box.lengths(), length{field: "lineWidth", mm: o.LineWidth})
}

func (o ShapeOptions) outline() Params {
	params := o.Box.params(true)
	params["lineWidth"] = resolveLineWidth(o.LineWidth)
	return params
}

func (o RoundRectangleOptions) withCorners(params Params) Params {
	width, height := o.Corners.resolve()
	params["cornerWidth"] = width
	params["cornerHeight"] = height
	return params
}

func (c *Client) drawShape(ctx context.Context, action string, ls []length, params Params) error {
	if err := checkLengths(action, ls...); err != nil {
		return err
	}

	if err := c.do(ctx, action, params); err != nil {
		return fmt.Errorf("drawing shape: %w", err)
	}

	return nil
}

// LineOptions describes a straight line from (X1, Y1) to (X2, Y2) in millimeters.
type LineOptions struct {
	X1, Y1    float64
	X2, Y2    float64
	LineWidth float64 // defaults to DefaultLineWidth
}

func (o LineOptions) lengths() []length {
	return []length{
		{field: "x1", mm: o.X1},
		{field: "y1", mm: o.Y1},
		{field: "x2", mm: o.X2},
		{field: "y2", mm: o.Y2},
		{field: "lineWidth", mm: o.LineWidth},
	}
}

func (o LineOptions) params() Params {
	return Params{
		"x1":        Hundredths(o.X1),
		"y1":        Hundredths(o.Y1),
		"x2":        Hundredths(o.X2),
		"y2":        Hundredths(o.Y2),
		"lineWidth": resolveLineWidth(o.LineWidth),
	}
}

// DrawLine prints a straight or diagonal line.
func (c *Client) DrawLine(ctx context.Context, opts LineOptions) error {
	if err := checkLengths(ActionDrawLine, opts.lengths()...); err != nil {
		return err
	}

	if err := c.do(ctx, ActionDrawLine, opts.params()); err != nil {
		return fmt.Errorf("drawing line: %w", err)
	}

	return nil
}

// DashLineOptions describes a dashed line.
type DashLineOptions struct {
	LineOptions
	Dash DashPattern
}

// DrawDashLine prints a dashed line.
func (c *Client) DrawDashLine(ctx context.Context, opts DashLineOptions) error {
	if err := checkLengths(ActionDrawDashLine, append(opts.LineOptions.lengths(), opts.Dash.lengths()...)...); err != nil {
		return err
	}

	params := merge(opts.LineOptions.params(), opts.Dash.resolve())

	if err := c.do(ctx, ActionDrawDashLine, params); err != nil {
		return fmt.Errorf("drawing dash line: %w", err)
	}

	return nil
}
