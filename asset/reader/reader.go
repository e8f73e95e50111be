package reader

import (
	"fmt"
	"strings"

	"github.com/achilleasa/scexport/asset"
)

// The Reader interface is implemented by all point readers.
type Reader interface {
	// Stream points from a resource and return the number of points read.
	Read(*asset.Resource) (int, error)
}

// Stream the points stored in filename into sink. Standard input can be
// selected with asset.StdinName and is parsed as a wavefront obj stream.
func ReadPoints(filename string, sink PointSink) (int, error) {
	res, err := asset.NewResource(filename, nil)
	if err != nil {
		return 0, err
	}
	defer res.Close()

	// Select reader based on file extension
	var reader Reader
	if filename == asset.StdinName || strings.HasSuffix(strings.ToLower(filename), ".obj") {
		reader = newWavefrontReader(sink)
	} else {
		return 0, fmt.Errorf("readPoints: unsupported file format")
	}
	return reader.Read(res)
}
