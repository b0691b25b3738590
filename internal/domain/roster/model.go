package roster

// PlayerRecord is one roster entry. Records carry no identity of their
// own; a record is addressed purely by its position in the store, and
// positions shift down when an earlier record is removed.
type PlayerRecord struct {
	Name    string
	Team    string
	Goals   int
	Assists int
}

// FieldPatch is a partial update for a stored record. Text fields apply
// only when non-empty; numeric fields apply only when non-nil, which
// keeps zero expressible as a real value distinct from "not provided".
type FieldPatch struct {
	Name    string
	Team    string
	Goals   *int
	Assists *int
}

// Apply returns rec with the provided patch fields overwritten.
func (p FieldPatch) Apply(rec PlayerRecord) PlayerRecord {
	if p.Name != "" {
		rec.Name = p.Name
	}
	if p.Team != "" {
		rec.Team = p.Team
	}
	if p.Goals != nil {
		rec.Goals = *p.Goals
	}
	if p.Assists != nil {
		rec.Assists = *p.Assists
	}

	return rec
}

// IsEmpty reports whether the patch carries no field at all.
func (p FieldPatch) IsEmpty() bool {
	return p.Name == "" && p.Team == "" && p.Goals == nil && p.Assists == nil
}
