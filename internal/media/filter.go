package media

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nobucshirai/silencecut/internal/silence"
)

// BuildEditRequest translates a keep-segment plan into the edit request for
// one destructive rewrite. Each kept segment is trimmed out of the input and
// has its presentation timestamps reset to zero; two segments are then
// concatenated head-then-tail. For video inputs the video stream is trimmed
// at the same boundaries and concatenated in the same order as the audio so
// the streams stay in sync.
//
// An empty plan means the whole file was silence; the request degrades to a
// verbatim duplicate of the input.
func BuildEditRequest(plan []silence.Segment, layout StreamLayout) EditRequest {
	if len(plan) == 0 {
		return EditRequest{Duplicate: true}
	}

	var (
		filters []string
		aLabels []string
		vLabels []string
	)

	for i, seg := range plan {
		n := i + 1
		start := formatSeconds(seg.Start)
		end := formatSeconds(seg.End)

		if layout == AudioVideo {
			vLabel := fmt.Sprintf("v%d", n)
			filters = append(filters,
				fmt.Sprintf("[0:v]trim=%s:%s,setpts=PTS-STARTPTS[%s]", start, end, vLabel))
			vLabels = append(vLabels, vLabel)
		}

		aLabel := fmt.Sprintf("a%d", n)
		filters = append(filters,
			fmt.Sprintf("[0:a]atrim=%s:%s,asetpts=PTS-STARTPTS[%s]", start, end, aLabel))
		aLabels = append(aLabels, aLabel)
	}

	if len(plan) == 1 {
		req := EditRequest{FilterComplex: strings.Join(filters, "; ")}
		if layout == AudioVideo {
			req.OutputLabels = []string{vLabels[0], aLabels[0]}
		} else {
			req.OutputLabels = []string{aLabels[0]}
		}
		return req
	}

	var concat string
	var outputs []string
	if layout == AudioVideo {
		concat = fmt.Sprintf("[%s][%s][%s][%s]concat=n=2:v=1:a=1[outv][outa]",
			vLabels[0], aLabels[0], vLabels[1], aLabels[1])
		outputs = []string{"outv", "outa"}
	} else {
		concat = fmt.Sprintf("[%s][%s]concat=n=2:v=0:a=1[out]", aLabels[0], aLabels[1])
		outputs = []string{"out"}
	}

	return EditRequest{
		FilterComplex: strings.Join(filters, "; ") + "; " + concat,
		OutputLabels:  outputs,
	}
}

// formatSeconds renders a timestamp without trailing zero noise.
func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
