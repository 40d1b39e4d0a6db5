// Package recommendation turns a raw photo analysis result into the
// products and routine shown on the results step.
package recommendation

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NoDetectionsMessage is shown when the analysis found nothing.
const NoDetectionsMessage = "No conditions detected"

// BoundingBox is the detector's box in pixel coordinates.
type BoundingBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Detection is one classified region.
type Detection struct {
	Class       string       `json:"class"`
	Confidence  float64      `json:"confidence"`
	BoundingBox *BoundingBox `json:"bounding_box,omitempty"`
}

// Label formats the detection chip, e.g. "Acne (81.0%)".
func (d Detection) Label() string {
	return fmt.Sprintf("%s (%.1f%%)", d.Class, d.Confidence*100)
}

// Result is the inference response shape the renderer understands.
type Result struct {
	Detections     []Detection `json:"detections"`
	AnnotatedImage string      `json:"annotated_image,omitempty"`
	ImageFormat    string      `json:"image_format,omitempty"`
}

// Parse decodes raw leniently; any other shape yields an empty result.
func Parse(raw json.RawMessage) Result {
	var res Result
	if len(bytes.TrimSpace(raw)) == 0 {
		return res
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		return Result{}
	}

	return res
}

// Primary picks the detection with strictly maximal confidence; on a tie the
// earliest one wins.
func Primary(detections []Detection) (Detection, bool) {
	if len(detections) == 0 {
		return Detection{}, false
	}

	best := detections[0]
	for _, d := range detections[1:] {
		if d.Confidence > best.Confidence {
			best = d
		}
	}

	return best, true
}

// DetectionView is a detection chip.
type DetectionView struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
	Label      string  `json:"label"`
}

// Rendered is everything the results step displays.
type Rendered struct {
	Pending        bool            `json:"pending"`
	Detections     []DetectionView `json:"detections"`
	Message        string          `json:"message,omitempty"`
	Primary        *Detection      `json:"primary,omitempty"`
	Bundle         Bundle          `json:"bundle"`
	AnnotatedImage string          `json:"annotated_image,omitempty"`
}

// Render is a pure function of the raw analysis result. A nil result renders
// as pending.
func Render(raw json.RawMessage) Rendered {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Rendered{Pending: true, Detections: []DetectionView{}, Bundle: DarkCircleBundle()}
	}

	res := Parse(trimmed)
	out := Rendered{Detections: make([]DetectionView, 0, len(res.Detections))}
	for _, d := range res.Detections {
		out.Detections = append(out.Detections, DetectionView{
			Class:      d.Class,
			Confidence: d.Confidence,
			Label:      d.Label(),
		})
	}

	primary, ok := Primary(res.Detections)
	if ok {
		out.Primary = &primary
		out.Bundle = BundleFor(primary.Class)
	} else {
		out.Message = NoDetectionsMessage
		out.Bundle = BundleFor("")
	}

	if res.AnnotatedImage != "" {
		out.AnnotatedImage = "data:image/jpeg;base64," + res.AnnotatedImage
	}

	return out
}
