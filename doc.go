// Package lpapi provides a client for the local LPAPI label printer service.
//
// The service listens on a fixed loopback port and accepts one form-encoded
// POST per printer command. This package turns typed Go calls into those
// commands: it validates required fields, fills in defaults and converts
// every length from millimeters into the service's hundredths of a millimeter.
//
// Basic usage:
//
//	client := lpapi.New()
//
//	name, err := client.GetPrinterName(ctx)
//	err = client.OpenPrinter(ctx, name)
//
//	ok, err := client.StartJob(ctx, lpapi.JobOptions{Width: 45, Height: 20})
//	err = client.DrawText(ctx, lpapi.TextOptions{Text: "Hello", FontHeight: 4})
//	err = client.CommitJob(ctx)
//
// The job and page lifecycle (StartJob, StartPage, EndPage, CommitJob,
// AbortJob) is tracked by the service, not by the client. Callers are
// expected to issue lifecycle calls one after another.
//
// Errors come in three kinds:
//   - InvalidParametersError (wraps ErrInvalidParameters): nothing was sent
//   - RemoteCommandError: the service answered with a non-zero status code
//   - TransportError: the service was unreachable or answered with garbage
package lpapi
