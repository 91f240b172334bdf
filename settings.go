package lpapi

import (
	"context"
	"fmt"
)

// OrientationArg is either a bare Orientation or an OrientationParams.
type OrientationArg interface {
	orientationParams() OrientationParams
}

// OrientationParams is the structured form of SetItemOrientation's argument.
type OrientationParams struct {
	Orientation *Orientation
}

func (p OrientationParams) orientationParams() OrientationParams { return p }

func (o Orientation) orientationParams() OrientationParams {
	return OrientationParams{Orientation: &o}
}

// AlignmentArg is either a bare Alignment or an AlignmentParams.
type AlignmentArg interface {
	alignmentParams() AlignmentParams
}

// AlignmentParams is the structured form of the alignment setters' argument.
type AlignmentParams struct {
	Alignment *Alignment
}

func (p AlignmentParams) alignmentParams() AlignmentParams { return p }

func (a Alignment) alignmentParams() AlignmentParams {
	return AlignmentParams{Alignment: &a}
}

// ValueArg is either a bare value (ParamValue, GapType) or a ValueParams.
type ValueArg interface {
	valueParams() ValueParams
}

// ValueParams is the structured form of a parameter value.
type ValueParams struct {
	Value *int
}

// ParamValue is a bare printer parameter value.
type ParamValue int

func (p ValueParams) valueParams() ValueParams { return p }

func (v ParamValue) valueParams() ValueParams {
	n := int(v)
	return ValueParams{Value: &n}
}

func (g GapType) valueParams() ValueParams {
	n := int(g)
	return ValueParams{Value: &n}
}

// GetItemOrientation returns the clockwise rotation applied to following items.
func (c *Client) GetItemOrientation(ctx context.Context) (Orientation, error) {
	resp, err := c.request(ctx, ActionGetItemOrientation, nil)
	if err != nil {
		return 0, fmt.Errorf("getting item orientation: %w", err)
	}

	n, err := resp.Int()
	if err != nil {
		return 0, fmt.Errorf("parsing item orientation: %w", err)
	}

	return Orientation(n), nil
}

// SetItemOrientation sets the clockwise rotation of following items.
func (c *Client) SetItemOrientation(ctx context.Context, arg OrientationArg) error {
	var p OrientationParams
	if arg != nil {
		p = arg.orientationParams()
	}
	if p.Orientation == nil {
		return missing(ActionSetItemOrientation, "orientation")
	}

	if err := c.do(ctx, ActionSetItemOrientation, Params{"orientation": int(*p.Orientation)}); err != nil {
		return fmt.Errorf("setting item orientation: %w", err)
	}

	return nil
}

// GetItemHorizontalAlignment returns the horizontal alignment of following items.
func (c *Client) GetItemHorizontalAlignment(ctx context.Context) (Alignment, error) {
	return c.getAlignment(ctx, ActionGetItemHorizontalAlignment)
}

// SetItemHorizontalAlignment sets the horizontal alignment: left, center or right.
func (c *Client) SetItemHorizontalAlignment(ctx context.Context, arg AlignmentArg) error {
	return c.setAlignment(ctx, ActionSetItemHorizontalAlignment, arg)
}

// GetItemVerticalAlignment returns the vertical alignment of following items.
func (c *Client) GetItemVerticalAlignment(ctx context.Context) (Alignment, error) {
	return c.getAlignment(ctx, ActionGetItemVerticalAlignment)
}

// SetItemVerticalAlignment sets the vertical alignment: top, middle or bottom.
func (c *Client) SetItemVerticalAlignment(ctx context.Context, arg AlignmentArg) error {
	return c.setAlignment(ctx, ActionSetItemVerticalAlignment, arg)
}

func (c *Client) getAlignment(ctx context.Context, action string) (Alignment, error) {
	resp, err := c.request(ctx, action, nil)
	if err != nil {
		return 0, fmt.Errorf("getting alignment: %w", err)
	}

	n, err := resp.Int()
	if err != nil {
		return 0, fmt.Errorf("parsing alignment: %w", err)
	}

	return Alignment(n), nil
}

func (c *Client) setAlignment(ctx context.Context, action string, arg AlignmentArg) error {
	var p AlignmentParams
	if arg != nil {
		p = arg.alignmentParams()
	}
	if p.Alignment == nil {
		return missing(action, "alignment")
	}

	if err := c.do(ctx, action, Params{"alignment": int(*p.Alignment)}); err != nil {
		return fmt.Errorf("setting alignment: %w", err)
	}

	return nil
}

// GetParam returns the value of a printer parameter.
func (c *Client) GetParam(ctx context.Context, id ParamID) (int, error) {
	if id == 0 {
		return 0, missing(ActionGetParam, "id")
	}

	resp, err := c.request(ctx, ActionGetParam, Params{"id": int(id)})
	if err != nil {
		return 0, fmt.Errorf("getting param %d: %w", id, err)
	}

	value, err := resp.Int()
	if err != nil {
		return 0, fmt.Errorf("parsing param %d: %w", id, err)
	}

	return value, nil
}

// SetParam sets the value of a printer parameter.
func (c *Client) SetParam(ctx context.Context, id ParamID, arg ValueArg) error {
	if id == 0 {
		return missing(ActionSetParam, "id")
	}

	var p ValueParams
	if arg != nil {
		p = arg.valueParams()
	}
	if p.Value == nil {
		return missing(ActionSetParam, "value")
	}

	if err := c.do(ctx, ActionSetParam, Params{"id": int(id), "value": *p.Value}); err != nil {
		return fmt.Errorf("setting param %d: %w", id, err)
	}

	return nil
}

// GetGapType returns the paper type of the connected printer.
func (c *Client) GetGapType(ctx context.Context) (GapType, error) {
	v, err := c.GetParam(ctx, ParamGapType)
	return GapType(v), err
}

// SetGapType sets the paper type of the connected printer.
func (c *Client) SetGapType(ctx context.Context, arg ValueArg) error {
	return c.SetParam(ctx, ParamGapType, arg)
}

// GetPrintDarkness returns the print darkness of the connected printer.
func (c *Client) GetPrintDarkness(ctx context.Context) (int, error) {
	return c.GetParam(ctx, ParamPrintDarkness)
}

// SetPrintDarkness sets the print darkness of the connected printer.
func (c *Client) SetPrintDarkness(ctx context.Context, arg ValueArg) error {
	return c.SetParam(ctx, ParamPrintDarkness, arg)
}

// GetPrintSpeed returns the print speed of the connected printer.
func (c *Client) GetPrintSpeed(ctx context.Context) (int, error) {
	return c.GetParam(ctx, ParamPrintSpeed)
}

// SetPrintSpeed sets the print speed of the connected printer.
func (c *Client) SetPrintSpeed(ctx context.Context, arg ValueArg) error {
	return c.SetParam(ctx, ParamPrintSpeed, arg)
}
