package messaging

import "github.com/matst80/slask-photos/pkg/types"

type ChangeTopic string

const (
	PhotoUpserted  = ChangeTopic("photo_upserted")
	PhotoRemoved   = ChangeTopic("photo_removed")
	CurationChange = ChangeTopic("curation_change")
)

// CurationUpdate is the curation collaborator's write, applied to the
// catalog as a record replacement so the engine never mutates in place.
type CurationUpdate struct {
	Id     types.PhotoId `json:"id"`
	Status string        `json:"status"`
}
