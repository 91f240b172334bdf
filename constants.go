package lpapi

// Service actions.
const (
	ActionGetPrinters     = "GetPrinters"
	ActionOpenPrinter     = "OpenPrinter"
	ActionGetPrinterName  = "GetPrinterName"
	ActionIsPrinterOpened = "IsPrinterOpened"
	ActionIsPrinterOnline = "IsPrinterOnline"
	ActionClosePrinter    = "ClosePrinter"

	ActionGetItemOrientation         = "GetItemOrientation"
	ActionSetItemOrientation         = "SetItemOrientation"
	ActionGetItemHorizontalAlignment = "GetItemHorizontalAlignment"
	ActionSetItemHorizontalAlignment = "SetItemHorizontalAlignment"
	ActionGetItemVerticalAlignment   = "GetItemVerticalAlignment"
	ActionSetItemVerticalAlignment   = "SetItemVerticalAlignment"

	ActionGetParam = "GetParam"
	ActionSetParam = "SetParam"

	ActionStartJob  = "StartJob"
	ActionAbortJob  = "AbortJob"
	ActionCommitJob = "CommitJob"
	ActionStartPage = "StartPage"
	ActionEndPage   = "EndPage"

	ActionDrawText           = "DrawText"
	ActionDraw1DBarcode      = "Draw1DBarcode"
	ActionDraw2DQRCode       = "Draw2DQRCode"
	ActionDraw2DPdf417       = "Draw2DPdf417"
	ActionDrawRectangle      = "DrawRectangle"
	ActionFillRectangle      = "FillRectangle"
	ActionDrawRoundRectangle = "DrawRoundRectangle"
	ActionFillRoundRectangle = "FillRoundRectangle"
	ActionDrawEllipse        = "DrawEllipse"
	ActionFillEllipse        = "FillEllipse"
	ActionDrawLine           = "DrawLine"
	ActionDrawDashLine       = "DrawDashLine"
	ActionDrawImage          = "DrawImage"
)

// Drawing defaults, in millimeters unless noted.
const (
	DefaultLineWidth    = 0.3
	DefaultCornerRadius = 1.5
	DefaultDashLength   = 0.25
	DefaultJobName      = "LPAPIWeb"
	DefaultThreshold    = 192 // grayscale cutoff, >= renders white
)

// Special DrawImage thresholds understood by the service.
const (
	ThresholdService = 0   // use the threshold from the printer settings
	ThresholdGray    = 256 // print grayscale, no black/white conversion
	ThresholdColor   = 257 // print the original colors
)

// ParamID identifies a tunable printer parameter.
type ParamID int

const (
	ParamGapType       ParamID = 1 // values 0-3, 255 follows the printer
	ParamPrintDarkness ParamID = 2 // values 0-14, 255 follows the printer
	ParamPrintSpeed    ParamID = 3 // values 0-4, 255 follows the printer
)

// ParamUnset asks the printer to use its own setting for a parameter.
const ParamUnset = 255

// GapType is the paper sensing mode.
type GapType int

const (
	GapNone  GapType = 0 // continuous paper
	GapHole  GapType = 1
	GapGap   GapType = 2
	GapBlack GapType = 3 // black mark
	GapUnset GapType = 255
)

// Orientation is a clockwise rotation in degrees.
type Orientation int

const (
	Orientation0   Orientation = 0
	Orientation90  Orientation = 90
	Orientation180 Orientation = 180
	Orientation270 Orientation = 270
)

// Alignment is an item alignment. Horizontal: left, center, right.
// Vertical: top, middle, bottom.
type Alignment int

const (
	AlignLeft   Alignment = 0
	AlignCenter Alignment = 1
	AlignRight  Alignment = 2

	AlignTop    Alignment = 0
	AlignMiddle Alignment = 1
	AlignBottom Alignment = 2
)

// FontStyle flags for DrawText.
type FontStyle int

const (
	FontRegular    FontStyle = 0
	FontBold       FontStyle = 1
	FontItalic     FontStyle = 2
	FontBoldItalic FontStyle = 3
	FontUnderline  FontStyle = 4
	FontStrikeout  FontStyle = 8
)

// BarcodeType selects the 1D symbology.
type BarcodeType int

// BarcodeAuto lets the service pick the best symbology for the text.
const BarcodeAuto BarcodeType = 60
