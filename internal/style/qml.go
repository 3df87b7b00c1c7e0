package style

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

const qmlHeader = `<!DOCTYPE qgis PUBLIC 'http://mrcc.com/qgis.dtd' 'SYSTEM'>
<qgis version="3.28">
  <pipe>
    <rasterrenderer opacity="1" alphaBand="-1" band="1" type="paletted" nodataColor="">
      <rasterTransparency/>
      <colorPalette>
`

const qmlFooter = `      </colorPalette>
    </rasterrenderer>
    <brightnesscontrast brightness="0" contrast="0"/>
    <huesaturation colorizeOn="0" saturation="0" grayscaleMode="0"/>
    <rasterresampler maxOversampling="2"/>
  </pipe>
  <blendMode>0</blendMode>
</qgis>
`

// WriteQML writes a QGIS paletted-raster style for the combined-code
// raster: one paletteEntry per code in the palette plus a nodata entry,
// so the layer renders identically on any machine the style is opened
// on.
func WriteQML(w io.Writer, t *ColorTable) error {
	if _, err := io.WriteString(w, qmlHeader); err != nil {
		return fmt.Errorf("write qml: %w", err)
	}

	for _, e := range t.Palette.Entries() {
		label := Label(e.ClassX, e.ClassY, t.Palette.K)
		if err := writePaletteEntry(w, e.Code, e.Color, label); err != nil {
			return err
		}
	}
	if err := writePaletteEntry(w, 0, t.NodataColor, "No data"); err != nil {
		return err
	}

	if _, err := io.WriteString(w, qmlFooter); err != nil {
		return fmt.Errorf("write qml: %w", err)
	}
	return nil
}

func writePaletteEntry(w io.Writer, value int, color, label string) error {
	var esc bytes.Buffer
	if err := xml.EscapeText(&esc, []byte(label)); err != nil {
		return fmt.Errorf("write qml entry %d: %w", value, err)
	}
	_, err := fmt.Fprintf(w,
		"        <paletteEntry alpha=\"255\" value=\"%d\" color=\"%s\" label=\"%s\"/>\n",
		value, color, esc.Bytes())
	if err != nil {
		return fmt.Errorf("write qml entry %d: %w", value, err)
	}
	return nil
}
