package lpapi

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_shapes(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		draw     func(*Client) error
		wantForm map[string]string
	}{
		{
			name: "rectangle defaults",
			url:  "http://127.0.0.1:15216/lpapi/DrawRectangle",
			draw: func(c *Client) error {
				return c.DrawRectangle(context.Background(), ShapeOptions{Box: Box{Width: 10}})
			},
			wantForm: map[string]string{"x": "0", "y": "0", "width": "1000", "height": "1000", "lineWidth": "30"},
		},
		{
			name: "rectangle explicit",
			url:  "http://127.0.0.1:15216/lpapi/DrawRectangle",
			draw: func(c *Client) error {
				return c.DrawRectangle(context.Background(), ShapeOptions{Box: Box{X: 1, Y: 2, Width: 10, Height: 4}, LineWidth: 0.5})
			},
			wantForm: map[string]string{"x": "100", "y": "200", "width": "1000", "height": "400", "lineWidth": "50"},
		},
		{
			name: "filled rectangle",
			url:  "http://127.0.0.1:15216/lpapi/FillRectangle",
			draw: func(c *Client) error {
				return c.FillRectangle(context.Background(), ShapeOptions{Box: Box{Width: 8}, LineWidth: 1})
			},
			wantForm: map[string]string{"x": "0", "y": "0", "width": "800", "height": "800"},
		},
		{
			name: "round rectangle defaults",
			url:  "http://127.0.0.1:15216/lpapi/DrawRoundRectangle",
			draw: func(c *Client) error {
				return c.DrawRoundRectangle(context.Background(), RoundRectangleOptions{ShapeOptions: ShapeOptions{Box: Box{Width: 20, Height: 10}}})
			},
			wantForm: map[string]string{
				"x": "0", "y": "0", "width": "2000", "height": "1000",
				"cornerWidth": "150", "cornerHeight": "150", "lineWidth": "30",
			},
		},
		{
			name: "round rectangle corner height follows width",
			url:  "http://127.0.0.1:15216/lpapi/DrawRoundRectangle",
			draw: func(c *Client) error {
				return c.DrawRoundRectangle(context.Background(), RoundRectangleOptions{
					ShapeOptions: ShapeOptions{Box: Box{Width: 20}},
					Corners:      Corners{Width: Float(3)},
				})
			},
			wantForm: map[string]string{
				"x": "0", "y": "0", "width": "2000", "height": "2000",
				"cornerWidth": "300", "cornerHeight": "300", "lineWidth": "30",
			},
		},
		{
			name: "filled round rectangle",
			url:  "http://127.0.0.1:15216/lpapi/FillRoundRectangle",
			draw: func(c *Client) error {
				return c.FillRoundRectangle(context.Background(), RoundRectangleOptions{
					ShapeOptions: ShapeOptions{Box: Box{Width: 20}},
					Corners:      Corners{Width: Float(2), Height: Float(1)},
				})
			},
			wantForm: map[string]string{
				"x": "0", "y": "0", "width": "2000", "height": "2000",
				"cornerWidth": "200", "cornerHeight": "100",
			},
		},
		{
			name: "ellipse",
			url:  "http://127.0.0.1:15216/lpapi/DrawEllipse",
			draw: func(c *Client) error {
				return c.DrawEllipse(context.Background(), ShapeOptions{Box: Box{Width: 6, Height: 3}})
			},
			wantForm: map[string]string{"x": "0", "y": "0", "width": "600", "height": "300", "lineWidth": "30"},
		},
		{
			name: "filled circle",
			url:  "http://127.0.0.1:15216/lpapi/FillEllipse",
			draw: func(c *Client) error {
				return c.FillEllipse(context.Background(), ShapeOptions{Box: Box{X: 1, Width: 6}})
			},
			wantForm: map[string]string{"x": "100", "y": "0", "width": "600", "height": "600"},
		},
		{
			name: "line",
			url:  "http://127.0.0.1:15216/lpapi/DrawLine",
			draw: func(c *Client) error {
				return c.DrawLine(context.Background(), LineOptions{Y1: 5, X2: 45, Y2: 5, LineWidth: 1})
			},
			wantForm: map[string]string{"x1": "0", "y1": "500", "x2": "4500", "y2": "500", "lineWidth": "100"},
		},
		{
			name: "dash line cascade",
			url:  "http://127.0.0.1:15216/lpapi/DrawDashLine",
			draw: func(c *Client) error {
				return c.DrawDashLine(context.Background(), DashLineOptions{
					LineOptions: LineOptions{X2: 45},
					Dash:        DashPattern{Len1: Float(0.5)},
				})
			},
			wantForm: map[string]string{
				"x1": "0", "y1": "0", "x2": "4500", "y2": "0", "lineWidth": "30",
				"dashLen1": "50", "dashLen2": "50", "dashLen3": "50", "dashLen4": "50",
			},
		},
		{
			name: "dash line list",
			url:  "http://127.0.0.1:15216/lpapi/DrawDashLine",
			draw: func(c *Client) error {
				return c.DrawDashLine(context.Background(), DashLineOptions{
					LineOptions: LineOptions{X2: 45, LineWidth: 1},
					Dash:        DashPattern{Lengths: []float64{0.5, 0.25}},
				})
			},
			wantForm: map[string]string{
				"x1": "0", "y1": "0", "x2": "4500", "y2": "0", "lineWidth": "100",
				"dashLen": "50,25",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, calls := newTestClient(t, respondOK())

			require.NoError(t, tt.draw(client))

			require.Len(t, *calls, 1)
			got := (*calls)[0]
			assert.Equal(t, tt.url, got.URL)
			assert.Len(t, got.Form, len(tt.wantForm))
			for k, v := range tt.wantForm {
				assert.Equal(t, v, got.Form.Get(k), k)
			}
		})
	}
}

func TestClient_DrawDashLineEncodesList(t *testing.T) {
	client, calls := newTestClient(t, respondOK())

	require.NoError(t, client.DrawDashLine(context.Background(), DashLineOptions{
		Dash: DashPattern{Lengths: []float64{0.5, 0.25}},
	}))

	assert.Contains(t, (*calls)[0].Body, "dashLen=50%2C25")
}

func TestClient_rejectsInvalidLengths(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	tests := []struct {
		name   string
		action string
		field  string
		draw   func(*Client) error
	}{
		{
			name:   "job width",
			action: ActionStartJob,
			field:  "width",
			draw: func(c *Client) error {
				_, err := c.StartJob(context.Background(), JobOptions{Width: inf})
				return err
			},
		},
		{
			name:   "job gap",
			action: ActionStartJob,
			field:  "gapLen",
			draw: func(c *Client) error {
				_, err := c.StartJob(context.Background(), JobOptions{Width: 40, GapLength: nan})
				return err
			},
		},
		{
			name:   "text font height",
			action: ActionDrawText,
			field:  "fontHeight",
			draw: func(c *Client) error {
				return c.DrawText(context.Background(), TextOptions{Text: "x", FontHeight: 1e20})
			},
		},
		{
			name:   "barcode text height",
			action: ActionDraw1DBarcode,
			field:  "textHeight",
			draw: func(c *Client) error {
				return c.Draw1DBarcode(context.Background(), BarcodeOptions{Text: "1", TextHeight: nan})
			},
		},
		{
			name:   "qr code box",
			action: ActionDraw2DQRCode,
			field:  "x",
			draw: func(c *Client) error {
				return c.Draw2DQRCode(context.Background(), CodeOptions{Text: "x", Box: Box{X: nan}})
			},
		},
		{
			name:   "image box",
			action: ActionDrawImage,
			field:  "height",
			draw: func(c *Client) error {
				return c.DrawImage(context.Background(), ImageOptions{ImageFile: "a.png", Box: Box{Height: -inf}})
			},
		},
		{
			name:   "rectangle line width",
			action: ActionDrawRectangle,
			field:  "lineWidth",
			draw: func(c *Client) error {
				return c.DrawRectangle(context.Background(), ShapeOptions{Box: Box{Width: 10}, LineWidth: inf})
			},
		},
		{
			name:   "filled ellipse box",
			action: ActionFillEllipse,
			field:  "width",
			draw: func(c *Client) error {
				return c.FillEllipse(context.Background(), ShapeOptions{Box: Box{Width: nan}})
			},
		},
		{
			name:   "round rectangle corner",
			action: ActionFillRoundRectangle,
			field:  "cornerHeight",
			draw: func(c *Client) error {
				return c.FillRoundRectangle(context.Background(), RoundRectangleOptions{
					ShapeOptions: ShapeOptions{Box: Box{Width: 10}},
					Corners:      Corners{Height: Float(nan)},
				})
			},
		},
		{
			name:   "line end",
			action: ActionDrawLine,
			field:  "y2",
			draw: func(c *Client) error {
				return c.DrawLine(context.Background(), LineOptions{X2: 10, Y2: 1e20})
			},
		},
		{
			name:   "dash segment",
			action: ActionDrawDashLine,
			field:  "dashLen3",
			draw: func(c *Client) error {
				return c.DrawDashLine(context.Background(), DashLineOptions{
					LineOptions: LineOptions{X2: 10},
					Dash:        DashPattern{Len1: Float(1), Len3: Float(inf)},
				})
			},
		},
		{
			name:   "dash list",
			action: ActionDrawDashLine,
			field:  "dashLen",
			draw: func(c *Client) error {
				return c.DrawDashLine(context.Background(), DashLineOptions{
					LineOptions: LineOptions{X2: 10},
					Dash:        DashPattern{Lengths: []float64{0.5, nan}},
				})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, calls := newTestClient(t, respondOK())

			err := tt.draw(client)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParameters))

			var invalid *InvalidParametersError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.action, invalid.Action)
			assert.Equal(t, tt.field, invalid.Field)
			assert.Empty(t, *calls)
		})
	}
}
