package lpapi

// Box positions a drawing primitive. All lengths are millimeters; X and Y
// default to the top left corner of the page.
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64 // zero means unset
}

// params converts the box. With square set, an unset height repeats the
// converted width; otherwise it is sent as 0.
func (b Box) params(square bool) Params {
	width := Hundredths(b.Width)
	height := 0
	switch {
	case b.Height != 0:
		height = Hundredths(b.Height)
	case square:
		height = width
	}

	return Params{
		"x":      Hundredths(b.X),
		"y":      Hundredths(b.Y),
		"width":  width,
		"height": height,
	}
}

func (b Box) lengths() []length {
	return []length{
		{field: "x", mm: b.X},
		{field: "y", mm: b.Y},
		{field: "width", mm: b.Width},
		{field: "height", mm: b.Height},
	}
}

// resolveLineWidth falls back to DefaultLineWidth for an unset width.
func resolveLineWidth(mm float64) int {
	return Hundredths(nonZeroOr(mm, DefaultLineWidth))
}

// Corners holds the radii of a rounded rectangle in millimeters.
type Corners struct {
	Width  *float64 // defaults to DefaultCornerRadius
	Height *float64 // defaults to the resolved Width
}

func (c Corners) lengths() []length {
	ls := appendLength(nil, "cornerWidth", c.Width)
	return appendLength(ls, "cornerHeight", c.Height)
}

func (c Corners) resolve() (width, height int) {
	w := DefaultCornerRadius
	if c.Width != nil {
		w = *c.Width
	}
	width = Hundredths(w)

	height = width
	if c.Height != nil {
		height = Hundredths(*c.Height)
	}

	return width, height
}

// DashPattern describes the segments of a dashed line in millimeters. When
// Lengths is non-empty it wins and Len1-Len4 are ignored.
type DashPattern struct {
	Lengths []float64
	Len1    *float64 // defaults to DefaultDashLength
	Len2    *float64 // defaults to Len1
	Len3    *float64 // defaults to Len1
	Len4    *float64 // defaults to Len2
}

func (d DashPattern) resolve() Params {
	if len(d.Lengths) > 0 {
		return Params{"dashLen": joinHundredths(d.Lengths)}
	}

	pick := func(v *float64, def int) int {
		if v == nil {
			return def
		}
		return Hundredths(*v)
	}

	l1 := pick(d.Len1, Hundredths(DefaultDashLength))
	l2 := pick(d.Len2, l1)
	l3 := pick(d.Len3, l1)
	l4 := pick(d.Len4, l2)

	return Params{
		"dashLen1": l1,
		"dashLen2": l2,
		"dashLen3": l3,
		"dashLen4": l4,
	}
}

func (d DashPattern) lengths() []length {
	ls := make([]length, 0, len(d.Lengths)+4)
	for _, l := range d.Lengths {
		ls = append(ls, length{field: "dashLen", mm: l})
	}
	ls = appendLength(ls, "dashLen1", d.Len1)
	ls = appendLength(ls, "dashLen2", d.Len2)
	ls = appendLength(ls, "dashLen3", d.Len3)
	return appendLength(ls, "dashLen4", d.Len4)
}

func merge(dst Params, src Params) Params {
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
