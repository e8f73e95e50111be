package reader

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/achilleasa/scexport/asset"
	"github.com/achilleasa/scexport/log"
	"github.com/achilleasa/scexport/types"
)

// PointSink receives every scene point in authored coordinates.
type PointSink interface {
	CheckLowestPoint(types.Vec3)
}

// Streams the vertex records of a wavefront obj file into a sink. Faces,
// normals, materials and other records are ignored; "call" includes are
// followed.
type wavefrontReader struct {
	logger log.Logger

	sink      PointSink
	numPoints int

	// An error stack that provides additional error information when
	// obj files include other files.
	errStack []string

	// Resources currently being parsed, keyed by AbsPath.
	openPaths map[string]bool
}

func newWavefrontReader(sink PointSink) *wavefrontReader {
	return &wavefrontReader{
		logger:    log.New("wavefront reader"),
		sink:      sink,
		errStack:  make([]string, 0),
		openPaths: make(map[string]bool),
	}
}

// Stream all points from the resource into the sink and return the number
// of points read.
func (r *wavefrontReader) Read(res *asset.Resource) (int, error) {
	r.logger.Noticef(`streaming points from "%s"`, res.Path())
	start := time.Now()

	err := r.parse(res)
	if err != nil {
		return r.numPoints, err
	}

	r.logger.Noticef("read %d points in %d ms", r.numPoints, time.Since(start).Nanoseconds()/1e6)
	return r.numPoints, nil
}

// Generate an error message that also includes any data in the error stack.
func (r *wavefrontReader) emitError(file string, line int, msgFormat string, args ...interface{}) error {
	msg := fmt.Sprintf(msgFormat, args...)

	var errMsg string
	if file != "" {
		errMsg = strings.Trim(
			fmt.Sprintf("[%s: %d] error: %s\n%s", file, line, msg, strings.Join(r.errStack, "\n")),
			"\n",
		)
	} else {
		errMsg = strings.Trim(
			fmt.Sprintf("error: %s\n%s", msg, strings.Join(r.errStack, "\n")),
			"\n",
		)
	}

	return fmt.Errorf("%s", errMsg)
}

// Push a frame to the error stack.
func (r *wavefrontReader) pushFrame(msg string) {
	r.errStack = append([]string{msg}, r.errStack...)
}

// Pop a frame from the error stack.
func (r *wavefrontReader) popFrame() {
	r.errStack = r.errStack[1:]
}

func (r *wavefrontReader) parse(res *asset.Resource) error {
	var lineNum int = 0

	resPath := res.AbsPath()
	r.openPaths[resPath] = true
	defer delete(r.openPaths, resPath)

	scanner := bufio.NewScanner(res)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "call":
			if len(lineTokens) != 2 {
				return r.emitError(res.Path(), lineNum, `unsupported syntax for "call"; expected 1 argument; got %d`, len(lineTokens)-1)
			}

			r.pushFrame(fmt.Sprintf("referenced from %s:%d [call]", res.Path(), lineNum))

			incRes, err := asset.NewResource(lineTokens[1], res)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
			if r.openPaths[incRes.AbsPath()] {
				incRes.Close()
				return r.emitError(res.Path(), lineNum, "include cycle detected for %q", lineTokens[1])
			}

			err = r.parse(incRes)
			incRes.Close()
			if err != nil {
				return err
			}
			r.popFrame()
		case "v":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
			r.sink.CheckLowestPoint(v)
			r.numPoints++
		}
	}

	if err := scanner.Err(); err != nil {
		return r.emitError(res.Path(), lineNum, "%s", err.Error())
	}

	return nil
}

// Parse a Vec3 row. Wavefront vertices may carry an optional w component
// which is ignored. Infinite and NaN coordinates are rejected as the scene
// grammar cannot represent them.
func parseVec3(lineTokens []string) (types.Vec3, error) {
	if len(lineTokens) < 4 {
		return types.Vec3{}, fmt.Errorf(`unsupported syntax for "%s"; expected 3 arguments; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	v := types.Vec3{}
	for tokIdx := 1; tokIdx <= 3; tokIdx++ {
		coord, err := strconv.ParseFloat(lineTokens[tokIdx], 64)
		if err != nil {
			return v, err
		}
		v[tokIdx-1] = coord
	}

	if !v.IsFinite() {
		return types.Vec3{}, fmt.Errorf(`non-finite coordinates for "%s": %s %s %s`, lineTokens[0], lineTokens[1], lineTokens[2], lineTokens[3])
	}
	return v, nil
}
