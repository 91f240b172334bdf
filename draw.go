package lpapi

import (
	"context"
	"fmt"
)

// TextOptions describes a DrawText call. An unset Width or Height lets the
// service size the box to the text.
type TextOptions struct {
	Box
	Text       string // required
	FontName   string
	FontHeight float64
	FontStyle  FontStyle
}

// DrawText prints a text string.
func (c *Client) DrawText(ctx context.Context, opts TextOptions) error {
	if opts.Text == "" {
		return missing(ActionDrawText, "text")
	}
	if err := checkLengths(ActionDrawText, append(opts.Box.lengths(), length{field: "fontHeight", mm: opts.FontHeight})...); err != nil {
		return err
	}

	params := opts.Box.params(false)
	params["text"] = opts.Text
	params["fontHeight"] = Hundredths(opts.FontHeight)
	params["fontStyle"] = int(opts.FontStyle)
	if opts.FontName != "" {
		params["fontName"] = opts.FontName
	}

	if err := c.do(ctx, ActionDrawText, params); err != nil {
		return fmt.Errorf("drawing text: %w", err)
	}

	return nil
}

// BarcodeOptions describes a Draw1DBarcode call.
type BarcodeOptions struct {
	Box
	Text       string      // required
	Type       BarcodeType // defaults to BarcodeAuto
	TextHeight float64     // height of the human readable text, 0 hides it
}

// Draw1DBarcode prints a one dimensional barcode.
func (c *Client) Draw1DBarcode(ctx context.Context, opts BarcodeOptions) error {
	if opts.Text == "" {
		return missing(ActionDraw1DBarcode, "text")
	}
	if err := checkLengths(ActionDraw1DBarcode, append(opts.Box.lengths(), length{field: "textHeight", mm: opts.TextHeight})...); err != nil {
		return err
	}

	params := opts.Box.params(true)
	params["text"] = opts.Text
	params["textHeight"] = Hundredths(opts.TextHeight)
	params["type"] = int(BarcodeAuto)
	if opts.Type != 0 {
		params["type"] = int(opts.Type)
	}

	if err := c.do(ctx, ActionDraw1DBarcode, params); err != nil {
		return fmt.Errorf("drawing barcode: %w", err)
	}

	return nil
}

// CodeOptions describes a two dimensional code.
type CodeOptions struct {
	Box
	Text string // required
}

// Draw2DQRCode prints a QR code.
func (c *Client) Draw2DQRCode(ctx context.Context, opts CodeOptions) error {
	return c.draw2D(ctx, ActionDraw2DQRCode, opts)
}

// Draw2DPdf417 prints a PDF417 code.
func (c *Client) Draw2DPdf417(ctx context.Context, opts CodeOptions) error {
	return c.draw2D(ctx, ActionDraw2DPdf417, opts)
}

func (c *Client) draw2D(ctx context.Context, action string, opts CodeOptions) error {
	if opts.Text == "" {
		return missing(action, "text")
	}
	if err := checkLengths(action, opts.Box.lengths()...); err != nil {
		return err
	}

	params := opts.Box.params(true)
	params["text"] = opts.Text

	if err := c.do(ctx, action, params); err != nil {
		return fmt.Errorf("drawing 2D code: %w", err)
	}

	return nil
}

// ImageOptions describes a DrawImage call. An unset Width or Height keeps
// the size of the loaded image.
type ImageOptions struct {
	Box
	ImageFile string // required, path or URL of the image
	// Threshold is the grayscale cutoff, DefaultThreshold when nil. See
	// ThresholdService, ThresholdGray and ThresholdColor.
	Threshold *int
}

// DrawImage prints an image file scaled to the box. The image is converted
// to black and white by the service according to Threshold.
func (c *Client) DrawImage(ctx context.Context, opts ImageOptions) error {
	if opts.ImageFile == "" {
		return missing(ActionDrawImage, "imageFile")
	}
	if err := checkLengths(ActionDrawImage, opts.Box.lengths()...); err != nil {
		return err
	}

	params := opts.Box.params(false)
	params["imageFile"] = opts.ImageFile
	params["threshold"] = DefaultThreshold
	if opts.Threshold != nil {
		params["threshold"] = *opts.Threshold
	}

	if err := c.do(ctx, ActionDrawImage, params); err != nil {
		return fmt.Errorf("drawing image: %w", err)
	}

	return nil
}
