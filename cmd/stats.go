package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/scexport/scene"
	"github.com/achilleasa/scexport/types"
	"github.com/olekukonko/tablewriter"
)

func displayFloorStats(img *scene.Image) {
	var buf bytes.Buffer
	renderFloorStats(&buf, img)
	logger.Noticef("floor statistics\n%s", buf.String())
}

func renderFloorStats(buf *bytes.Buffer, img *scene.Image) {
	plane := img.FloorPlacement()
	minZ, maxZ := img.ZRange()

	table := tablewriter.NewWriter(buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Property", "Value"})
	table.AppendBulk([][]string{
		{"Points", fmt.Sprintf("%d", img.PointCount())},
		{"Floor angle", types.FormatFloat(img.FloorAngle())},
		{"Lowest point", img.LowestPoint().String()},
		{"Floor height", types.FormatFloat(img.FloorHeight())},
		{"Plane position", plane.Position.String()},
		{"Plane normal", plane.Normal.String()},
		{"Z range", fmt.Sprintf("%s .. %s", types.FormatFloat(minZ), types.FormatFloat(maxZ))},
	})
	table.SetFooter([]string{"Floor", fmt.Sprintf("%t", img.FloorShadow())})

	table.Render()
}
