// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bobfviewer/pkg/game/visual"
)

// SaveScreenshotHTML saves frame as an HTML page with one absolutely
// positioned element per primitive, in draw order. It returns the path of
// the written file.
func SaveScreenshotHTML(frame visual.Frame, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))

	dims := frame.Dimensions

	var page strings.Builder

	page.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Battle of the Bits - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .stage {
            position: relative;
            background-color: #0f0f1a;
            overflow: hidden;
        }
        .p { position: absolute; box-sizing: border-box; }
        .floor { background-color: #3b3b3b; }
        .grid-line { background-color: #d97706; }
        .tile { background-color: #555; border: 1px solid #777; }
        .item { border-radius: 20%; border: 1px solid #bb86fc; }
        .player { border-radius: 50%; border: 2px solid #fff; }
        .projectile { border-radius: 50%; background-color: #ffcc00; }
        .label {
            background-color: #f5f0e1;
            color: #000;
            text-align: center;
            border-radius: 3px;
            padding: 8px;
            font-size: 8px;
            line-height: 10px;
            letter-spacing: 1.4px;
            white-space: pre;
        }
        .unknown { color: #ff4444; margin-top: 20px; }
    </style>
</head>
<body>
`)

	page.WriteString(fmt.Sprintf(`    <div class="stage" style="width:%dpx;height:%dpx">`+"\n", dims.StageWidth, dims.StageHeight))

	for _, p := range frame.Primitives {
		page.WriteString("        ")
		page.WriteString(primitiveHTML(p))
		page.WriteString("\n")
	}

	page.WriteString(`    </div>` + "\n")

	// Tiles the builder could not classify
	if len(frame.Diagnostics) > 0 {
		page.WriteString(`    <div class="unknown">Unknown tiles: `)
		for i, u := range frame.Diagnostics {
			if i > 0 {
				page.WriteString(", ")
			}
			page.WriteString(html.EscapeString(fmt.Sprintf("%q at %d,%d", u.Code, u.Row, u.Col)))
		}
		page.WriteString(`</div>` + "\n")
	}

	page.WriteString(`</body>
</html>
`)

	if err := os.WriteFile(filename, []byte(page.String()), 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

// primitiveHTML renders one primitive as a positioned div
func primitiveHTML(p visual.Primitive) string {
	style := fmt.Sprintf("z-index:%d;opacity:%s;", p.Z, cssNumber(p.Alpha))

	switch p.Kind {
	case visual.KindGridLine:
		// lines are axis aligned, one of the two extents is zero
		w, h := p.X2-p.X, p.Y2-p.Y
		if w == 0 {
			w = 1
		}
		if h == 0 {
			h = 1
		}
		style += box(p.X, p.Y, w, h)
		return fmt.Sprintf(`<div class="p grid-line" style="%s"></div>`, style)

	case visual.KindLabel:
		if p.Label == nil {
			return ""
		}
		lb := p.Label
		style += box(lb.X, lb.Y, lb.Width, lb.Height)
		return fmt.Sprintf(`<div class="p label" style="%s">%s</div>`, style, html.EscapeString(lb.Text))

	case visual.KindProjectile:
		x, y := p.X, p.Y
		if p.Tween != nil {
			x, y = p.Tween.To.XInPx, p.Tween.To.YInPx
		}
		style += box(x-p.Width/2, y-p.Height/2, p.Width, p.Height)
		return fmt.Sprintf(`<div class="p projectile" style="%s" title="%s"></div>`, style, html.EscapeString(p.Key))
	}

	x, y := p.X, p.Y
	if p.Anchor == visual.AnchorCenter {
		x -= p.Width / 2
		y -= p.Height / 2
	}
	style += box(x, y, p.Width, p.Height)
	if p.HasTint {
		c := p.Tint.RGBA()
		style += fmt.Sprintf("background-color:rgb(%d,%d,%d);", c.R, c.G, c.B)
	}
	if p.Rotation != 0 {
		style += fmt.Sprintf("transform:rotate(%srad);", cssNumber(p.Rotation))
	}

	return fmt.Sprintf(`<div class="p %s" style="%s" title="%s"></div>`,
		p.Kind, style, html.EscapeString(string(p.Texture)))
}

func box(x, y, w, h float64) string {
	return fmt.Sprintf("left:%spx;top:%spx;width:%spx;height:%spx;",
		cssNumber(x), cssNumber(y), cssNumber(w), cssNumber(h))
}

func cssNumber(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
