package lpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Printer represents a printer known to the service.
type Printer struct {
	Name string `json:"name"`
	// Properties holds every field the service reported for the printer.
	Properties map[string]any `json:"-"`
}

// UnmarshalJSON accepts either a bare printer name or an object with a name field.
func (p *Printer) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		p.Name = name
		return nil
	}

	var props map[string]any
	if err := json.Unmarshal(data, &props); err != nil {
		return fmt.Errorf("decoding printer: %w", err)
	}

	p.Properties = props
	for _, key := range []string{"name", "printerName", "Name"} {
		if name, ok := props[key].(string); ok {
			p.Name = name
			break
		}
	}

	return nil
}

// GetPrintersOptions represents options for listing printers.
type GetPrintersOptions struct {
	OnlyOnline    *bool // only printers that are connected
	OnlySupported *bool // only printers the service can drive
	OnlyLocal     *bool // only locally attached printers
}

// GetPrinters retrieves the printers known to the service.
func (c *Client) GetPrinters(ctx context.Context, opts *GetPrintersOptions) ([]Printer, error) {
	params := Params{}
	if opts != nil {
		params.setBool("onlyOnline", opts.OnlyOnline)
		params.setBool("onlySupported", opts.OnlySupported)
		params.setBool("onlyLocal", opts.OnlyLocal)
	}

	resp, err := c.request(ctx, ActionGetPrinters, params)
	if err != nil {
		return nil, fmt.Errorf("getting printers: %w", err)
	}

	printers, err := decodePrinters(resp.ResultInfo)
	if err != nil {
		return nil, fmt.Errorf("parsing printers response: %w", err)
	}

	return printers, nil
}

// decodePrinters handles a list of printers or a comma separated name string.
func decodePrinters(raw json.RawMessage) ([]Printer, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var names string
	if err := json.Unmarshal(raw, &names); err == nil {
		var printers []Printer
		for _, name := range strings.Split(names, ",") {
			if name = strings.TrimSpace(name); name != "" {
				printers = append(printers, Printer{Name: name})
			}
		}
		return printers, nil
	}

	var printers []Printer
	if err := json.Unmarshal(raw, &printers); err != nil {
		return nil, err
	}
	return printers, nil
}

// OpenPrinter opens the printer with the given name, as reported by GetPrinters.
func (c *Client) OpenPrinter(ctx context.Context, printerName string) error {
	if printerName == "" {
		return missing(ActionOpenPrinter, "printerName")
	}

	if err := c.do(ctx, ActionOpenPrinter, Params{"printerName": printerName}); err != nil {
		return fmt.Errorf("opening printer: %w", err)
	}

	return nil
}

// GetPrinterName returns the name of the current printer.
func (c *Client) GetPrinterName(ctx context.Context) (string, error) {
	resp, err := c.request(ctx, ActionGetPrinterName, nil)
	if err != nil {
		return "", fmt.Errorf("getting printer name: %w", err)
	}

	var name string
	if err := json.Unmarshal(resp.ResultInfo, &name); err != nil {
		return "", fmt.Errorf("parsing printer name: %w", err)
	}

	return name, nil
}

// IsPrinterOpened reports whether a printer is currently open.
func (c *Client) IsPrinterOpened(ctx context.Context) (bool, error) {
	resp, err := c.request(ctx, ActionIsPrinterOpened, nil)
	if err != nil {
		return false, fmt.Errorf("checking printer opened: %w", err)
	}

	return resp.Bool()
}

// IsPrinterOnline reports whether the current printer is online.
func (c *Client) IsPrinterOnline(ctx context.Context) (bool, error) {
	resp, err := c.request(ctx, ActionIsPrinterOnline, nil)
	if err != nil {
		return false, fmt.Errorf("checking printer online: %w", err)
	}

	return resp.Bool()
}

// ClosePrinter closes the current printer. Pending job data is committed
// by the service and parameter settings are kept.
func (c *Client) ClosePrinter(ctx context.Context) error {
	if err := c.do(ctx, ActionClosePrinter, nil); err != nil {
		return fmt.Errorf("closing printer: %w", err)
	}

	return nil
}
