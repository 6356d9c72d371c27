package types

import "strings"

type PhotoId uint32

// SceneCandidate is one classifier scene label with its confidence.
// Candidates below the engine threshold are kept in storage but never
// surface as filterable values.
type SceneCandidate struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Photo is one analyzed library record. Everything the analysis
// pipeline extracts lives flat on the record so the dimension table
// can reach any attribute with a plain accessor.
type Photo struct {
	Id PhotoId `json:"id"`

	// single valued attributes
	Category             string `json:"category,omitempty"`
	CuratedStatus        string `json:"curatedStatus,omitempty"`
	Orientation          string `json:"orientation,omitempty"`
	SourceFormat         string `json:"sourceFormat,omitempty"`
	Camera               string `json:"camera,omitempty"`
	GradingStyle         string `json:"gradingStyle,omitempty"`
	TimeOfDay            string `json:"timeOfDay,omitempty"`
	Setting              string `json:"setting,omitempty"`
	Exposure             string `json:"exposure,omitempty"`
	Depth                string `json:"depth,omitempty"`
	CompositionTechnique string `json:"compositionTechnique,omitempty"`
	LocationName         string `json:"locationName,omitempty"`
	StyleLabel           string `json:"styleLabel,omitempty"`
	AestheticBucket      string `json:"aestheticBucket,omitempty"`
	Weather              string `json:"weather,omitempty"`
	Medium               string `json:"medium,omitempty"`
	EnhancementStatus    string `json:"enhancementStatus,omitempty"`
	FilmStock            string `json:"filmStock,omitempty"`

	// multi valued attributes
	Vibes    []string         `json:"vibes,omitempty"`
	Emotions []string         `json:"emotions,omitempty"`
	Scenes   []SceneCandidate `json:"scenes,omitempty"`

	// boolean analysis flags
	HasPeople    bool `json:"hasPeople,omitempty"`
	HasAnimal    bool `json:"hasAnimal,omitempty"`
	IsMonochrome bool `json:"isMonochrome,omitempty"`
	HasOCRText   bool `json:"hasOcrText,omitempty"`
	IsAnalyzed   bool `json:"isAnalyzed,omitempty"`

	// free text search fields
	Filename   string `json:"filename,omitempty"`
	FolderPath string `json:"folderPath,omitempty"`
	Caption    string `json:"caption,omitempty"`
	OCRText    string `json:"ocrText,omitempty"`
	AltText    string `json:"altText,omitempty"`

	// sortable metrics
	AestheticScore float64 `json:"aestheticScore,omitempty"`
	Saturation     float64 `json:"saturation,omitempty"`
	Brightness     float64 `json:"brightness,omitempty"`
	DepthScore     float64 `json:"depthScore,omitempty"`
	FaceCount      int     `json:"faceCount,omitempty"`
	CaptureDate    string  `json:"captureDate,omitempty"`

	Deleted bool `json:"deleted,omitempty"`
}

func (p *Photo) IsDeleted() bool {
	return p.Deleted
}

// SceneLabels returns the scene labels at or above the threshold, in
// record order.
func (p *Photo) SceneLabels(threshold float64) []string {
	ret := make([]string, 0, len(p.Scenes))
	for _, s := range p.Scenes {
		if s.Score >= threshold {
			ret = append(ret, s.Label)
		}
	}
	return ret
}

// SearchText joins every free text field into one haystack for the
// query matcher.
func (p *Photo) SearchText() string {
	return strings.Join([]string{
		p.Filename,
		p.FolderPath,
		p.Caption,
		p.OCRText,
		p.AltText,
	}, " ")
}
