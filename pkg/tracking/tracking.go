package tracking

import (
	"net/http"

	"github.com/matst80/slask-photos/pkg/types"
)

type Tracking interface {
	TrackSession(sessionId string, r *http.Request) error
	TrackFilter(sessionId string, filters *types.FilterState, resultCount int) error
	TrackSearch(sessionId string, query string, resultCount int) error
}
