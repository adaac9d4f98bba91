package chart

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"time"
)

// EncodeSVG writes elements as an SVG document of the given size.
// Transitions become SMIL animations so the browser plays them without script.
func EncodeSVG(w io.Writer, width, height float64, elements []Element) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g">`, width, height)
	buf.WriteByte('\n')

	for _, el := range elements {
		switch el.Kind {
		case KindRect:
			writeRect(&buf, el)
		case KindText:
			writeText(&buf, el)
		case KindAxis:
			writeAxis(&buf, el)
		default:
			return fmt.Errorf("unknown element kind %d", el.Kind)
		}
	}

	buf.WriteString("</svg>\n")
	_, err := buf.WriteTo(w)
	return err
}

func writeRect(buf *bytes.Buffer, el Element) {
	a := el.Attrs
	fmt.Fprintf(buf, `<rect class="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"`,
		el.Class, a.X, a.Y, a.Width, a.Height, html.EscapeString(a.Fill))

	t := el.Transition
	if t == nil {
		buf.WriteString("/>\n")
		return
	}
	buf.WriteString(">")
	dur := seconds(t.Duration)
	begin := seconds(t.Delay)
	animate := func(attr, from, to string) {
		fmt.Fprintf(buf, `<animate attributeName="%s" from="%s" to="%s" begin="%s" dur="%s" fill="freeze"/>`,
			attr, from, to, begin, dur)
	}
	animate("y", fmt.Sprintf("%.2f", a.Y), fmt.Sprintf("%.2f", t.To.Y))
	animate("height", fmt.Sprintf("%.2f", a.Height), fmt.Sprintf("%.2f", t.To.Height))
	animate("fill", html.EscapeString(a.Fill), html.EscapeString(t.To.Fill))
	buf.WriteString("</rect>\n")
}

func writeText(buf *bytes.Buffer, el Element) {
	a := el.Final()
	fmt.Fprintf(buf, `<text class="%s" x="%.2f" y="%.2f" text-anchor="%s" font-family="%s" font-size="%gpx"`,
		el.Class, a.X, a.Y, el.Anchor, html.EscapeString(el.Font.Family), el.Font.Size)
	if el.Font.Weight != "" {
		fmt.Fprintf(buf, ` font-weight="%s"`, el.Font.Weight)
	}

	t := el.Transition
	if t == nil {
		fmt.Fprintf(buf, ">%s</text>\n", html.EscapeString(el.Text))
		return
	}
	fmt.Fprintf(buf, ` opacity="0"><set attributeName="opacity" to="1" begin="%s" fill="freeze"/>%s</text>`+"\n",
		seconds(t.Delay+t.Duration), html.EscapeString(el.Text))
}

func writeAxis(buf *bytes.Buffer, el Element) {
	ax := el.Axis
	if ax == nil {
		return
	}
	fmt.Fprintf(buf, `<g class="%s" transform="translate(%g,%g)" font-family="sans-serif" font-size="10" text-anchor="end">`,
		el.Class, ax.TranslateX, ax.TranslateY)
	fmt.Fprintf(buf, `<path fill="none" stroke="black" d="M-6,0H0V%.2fH-6"/>`, ax.Length)
	for _, t := range ax.Ticks {
		fmt.Fprintf(buf, `<g class="tick" transform="translate(0,%.2f)"><line stroke="black" x2="-6"/><text x="-9" dy="0.32em">%s</text></g>`,
			t.Pos, html.EscapeString(t.Label))
	}
	buf.WriteString("</g>\n")
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%gs", d.Seconds())
}
