package hostel

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces record identifiers.
type IDGenerator func() string

// NewID returns a random UUID string. If the random source fails it falls
// back to a base-36 random fragment followed by the base-36 millisecond
// clock, which is unique enough for one process but not across processes.
func NewID() string {
	return newIDFrom(uuid.NewRandom, time.Now)
}

func newIDFrom(random func() (uuid.UUID, error), now func() time.Time) string {
	if id, err := random(); err == nil {
		return id.String()
	}
	return fallbackID(now())
}

func fallbackID(at time.Time) string {
	return strconv.FormatUint(rand.Uint64(), 36) + strconv.FormatInt(at.UnixMilli(), 36)
}
