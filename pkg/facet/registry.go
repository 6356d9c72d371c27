package facet

import (
	"github.com/matst80/slask-photos/pkg/types"
)

// SceneScoreThreshold drops scene candidates the classifier was not
// sure enough about, both for matching and for facet counting.
const SceneScoreThreshold = 0.3

// Tri-state dimension states.
const (
	StateAnalyzed   = "analyzed"
	StatePending    = "pending"
	StateText       = "text"
	StateNoText     = "notext"
	StateMonochrome = "monochrome"
	StateColor      = "color"
	StatePeople     = "people"
	StateAnimals    = "animals"
	StateNone       = "none"
)

// registry is the full ordered dimension table. Adding a filterable
// attribute means adding one row here, nothing else.
var registry = []types.Dimension{
	{Id: "category", Name: "Category", Kind: types.KindScalar, Priority: 100,
		Scalar: func(p *types.Photo) string { return p.Category }},
	{Id: "curatedStatus", Name: "Curation", Kind: types.KindScalar, Priority: 95,
		Scalar: func(p *types.Photo) string { return p.CuratedStatus }},
	{Id: "orientation", Name: "Orientation", Kind: types.KindScalar, Priority: 90,
		Scalar: func(p *types.Photo) string { return p.Orientation }},
	{Id: "sourceFormat", Name: "Format", Kind: types.KindScalar, Priority: 85,
		Scalar: func(p *types.Photo) string { return p.SourceFormat }},
	{Id: "camera", Name: "Camera", Kind: types.KindOptionalScalar, Priority: 80,
		Scalar: func(p *types.Photo) string { return p.Camera }},
	{Id: "scene", Name: "Scene", Kind: types.KindMultiValue, Priority: 78, Threshold: SceneScoreThreshold,
		Values: func(p *types.Photo) []string { return p.SceneLabels(SceneScoreThreshold) }},
	{Id: "vibe", Name: "Vibe", Kind: types.KindMultiValue, Priority: 76,
		Values: func(p *types.Photo) []string { return p.Vibes }},
	{Id: "emotion", Name: "Emotion", Kind: types.KindMultiValue, Priority: 74,
		Values: func(p *types.Photo) []string { return p.Emotions }},
	{Id: "gradingStyle", Name: "Grading", Kind: types.KindOptionalScalar, Priority: 70,
		Scalar: func(p *types.Photo) string { return p.GradingStyle }},
	{Id: "timeOfDay", Name: "Time of day", Kind: types.KindOptionalScalar, Priority: 68,
		Scalar: func(p *types.Photo) string { return p.TimeOfDay }},
	{Id: "setting", Name: "Setting", Kind: types.KindOptionalScalar, Priority: 66,
		Scalar: func(p *types.Photo) string { return p.Setting }},
	{Id: "exposure", Name: "Exposure", Kind: types.KindOptionalScalar, Priority: 64,
		Scalar: func(p *types.Photo) string { return p.Exposure }},
	{Id: "depth", Name: "Depth", Kind: types.KindOptionalScalar, Priority: 62,
		Scalar: func(p *types.Photo) string { return p.Depth }},
	{Id: "composition", Name: "Composition", Kind: types.KindOptionalScalar, Priority: 60,
		Scalar: func(p *types.Photo) string { return p.CompositionTechnique }},
	{Id: "location", Name: "Location", Kind: types.KindOptionalScalar, Priority: 58,
		Scalar: func(p *types.Photo) string { return p.LocationName }},
	{Id: "style", Name: "Style", Kind: types.KindOptionalScalar, Priority: 56,
		Scalar: func(p *types.Photo) string { return p.StyleLabel }},
	{Id: "aestheticBucket", Name: "Aesthetic", Kind: types.KindOptionalScalar, Priority: 54,
		Scalar: func(p *types.Photo) string { return p.AestheticBucket }},
	{Id: "weather", Name: "Weather", Kind: types.KindOptionalScalar, Priority: 52,
		Scalar: func(p *types.Photo) string { return p.Weather }},
	{Id: "medium", Name: "Medium", Kind: types.KindOptionalScalar, Priority: 50,
		Scalar: func(p *types.Photo) string { return p.Medium }},
	{Id: "enhancement", Name: "Enhancement", Kind: types.KindOptionalScalar, Priority: 48,
		Scalar: func(p *types.Photo) string { return p.EnhancementStatus }},
	{Id: "filmStock", Name: "Film stock", Kind: types.KindOptionalScalar, Priority: 46,
		Scalar: func(p *types.Photo) string { return p.FilmStock }},
	{Id: "analyzed", Name: "Analysis", Kind: types.KindTriState, Priority: 40,
		States: []string{StateAnalyzed, StatePending},
		MatchState: func(p *types.Photo, state string) bool {
			return (state == StateAnalyzed) == p.IsAnalyzed
		}},
	{Id: "text", Name: "Text", Kind: types.KindTriState, Priority: 38,
		States: []string{StateText, StateNoText},
		MatchState: func(p *types.Photo, state string) bool {
			return (state == StateText) == p.HasOCRText
		}},
	{Id: "monochrome", Name: "Tone", Kind: types.KindTriState, Priority: 36,
		States: []string{StateMonochrome, StateColor},
		MatchState: func(p *types.Photo, state string) bool {
			return (state == StateMonochrome) == p.IsMonochrome
		}},
	{Id: "subject", Name: "Subject", Kind: types.KindTriState, Priority: 34,
		States: []string{StatePeople, StateAnimals, StateNone},
		MatchState: func(p *types.Photo, state string) bool {
			switch state {
			case StatePeople:
				return p.HasPeople
			case StateAnimals:
				return p.HasAnimal
			case StateNone:
				return !p.HasPeople && !p.HasAnimal
			}
			return false
		}},
}

// Dimensions returns the registry in declaration order.
func Dimensions() []types.Dimension {
	return registry
}

func GetDimension(id types.DimensionId) (*types.Dimension, bool) {
	for i := range registry {
		if registry[i].Id == id {
			return &registry[i], true
		}
	}
	return nil, false
}
