package header

import (
	"fmt"

	"github.com/arloliu/udf/errs"
	"github.com/arloliu/udf/internal/hash"
)

// nameTracker indexes sensor names by hash so SensorByName resolves in
// O(1), and flags a sensor tag that reuses a name already claimed by an
// earlier tag. A hash collision between two genuinely different names is
// not reported as a duplicate; the tracker falls back to treating the
// later name as unindexed rather than misattributing it.
type nameTracker struct {
	nameByHash map[uint64]string
	tagByHash  map[uint64]byte
}

func newNameTracker() *nameTracker {
	return &nameTracker{
		nameByHash: make(map[uint64]string),
		tagByHash:  make(map[uint64]byte),
	}
}

// track records name as belonging to tag. It returns a non-nil, non-fatal
// error wrapping errs.ErrDuplicateSensorName if name was already claimed
// by a different tag.
func (t *nameTracker) track(tag byte, name string) error {
	h := hash.ID(name)

	existingName, seen := t.nameByHash[h]
	if !seen {
		t.nameByHash[h] = name
		t.tagByHash[h] = tag

		return nil
	}

	if existingName != name {
		// Hash collision between two distinct names; leave the index
		// pointing at the first name and skip collision reporting, since
		// this isn't a schema authoring mistake.
		return nil
	}

	return fmt.Errorf("%w: tag %d reuses name %q already used by tag %d", errs.ErrDuplicateSensorName, tag, name, t.tagByHash[h])
}

// lookup returns the tag registered for name, if any.
func (t *nameTracker) lookup(name string) (byte, bool) {
	h := hash.ID(name)

	stored, ok := t.nameByHash[h]
	if !ok || stored != name {
		return 0, false
	}

	return t.tagByHash[h], true
}
