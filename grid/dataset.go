package grid

// Dataset maps field names to labeled arrays over a shared domain.
// Coords holds auxiliary coordinate arrays (such as the cylindrical radius
// R) that are attached to the dataset but are not data fields.
type Dataset struct {
	Domain *Domain
	Fields map[string]*Field
	Coords map[string]*Field
}

// NewDataset returns an empty dataset over the given domain.
func NewDataset(d *Domain) *Dataset {
	return &Dataset{
		Domain: d,
		Fields: map[string]*Field{},
		Coords: map[string]*Field{},
	}
}

// Has reports whether the dataset contains the named field or coordinate.
func (dat *Dataset) Has(name string) bool {
	if _, ok := dat.Fields[name]; ok {
		return true
	}
	_, ok := dat.Coords[name]
	return ok
}

// Drop removes the named field or coordinate if present.
func (dat *Dataset) Drop(name string) {
	delete(dat.Fields, name)
	delete(dat.Coords, name)
}

// ShallowCopy returns a dataset with fresh field and coordinate maps that
// share the underlying arrays with dat. Adding fields to the copy leaves
// dat untouched.
func (dat *Dataset) ShallowCopy() *Dataset {
	cp := NewDataset(dat.Domain)
	for name, f := range dat.Fields {
		cp.Fields[name] = f
	}
	for name, f := range dat.Coords {
		cp.Coords[name] = f
	}
	return cp
}
