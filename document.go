package tfengine

import "github.com/RoaringBitmap/roaring"

// documentRecord is the stored metadata for one document: its status and
// the integer mean of its rating vector (truncated toward zero; 0 if the
// vector was empty).
type documentRecord struct {
	status        Status
	averageRating int
}

// documentStore maps document id -> record, keeps ingestion order, and
// maintains a roaring.Bitmap per status for fast status-scoped enumeration.
// This is a derived index: docs is always the source of truth.
type documentStore struct {
	docs       map[int]documentRecord
	order      []int
	statusDocs map[Status]*roaring.Bitmap
}

func newDocumentStore() *documentStore {
	statusDocs := make(map[Status]*roaring.Bitmap, len(allStatuses))
	for _, s := range allStatuses {
		statusDocs[s] = roaring.NewBitmap()
	}
	return &documentStore{
		docs:       make(map[int]documentRecord),
		order:      make([]int, 0),
		statusDocs: statusDocs,
	}
}

func (d *documentStore) add(id int, status Status, averageRating int) {
	d.docs[id] = documentRecord{status: status, averageRating: averageRating}
	d.order = append(d.order, id)
	d.statusDocs[status].Add(uint32(id))
}

func (d *documentStore) get(id int) (documentRecord, bool) {
	rec, ok := d.docs[id]
	return rec, ok
}

func (d *documentStore) remove(id int) {
	rec, ok := d.docs[id]
	if !ok {
		return
	}
	delete(d.docs, id)
	d.statusDocs[rec.status].Remove(uint32(id))
	for i, existing := range d.order {
		if existing == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

func (d *documentStore) count() int {
	return len(d.docs)
}

// idsWithStatus returns, in ingestion order, the ids currently bearing the
// given status. Backs Engine.DocumentsWithStatus, e.g. to list all BANNED
// documents; the find-top queries do not consult it.
func (d *documentStore) idsWithStatus(status Status) []int {
	bitmap := d.statusDocs[status]
	out := make([]int, 0, bitmap.GetCardinality())
	for _, id := range d.order {
		if bitmap.Contains(uint32(id)) {
			out = append(out, id)
		}
	}
	return out
}
