package quality

import "time"

// Dataset is one immutable snapshot of all generated data plus id lookup
// indexes. It is published once and only ever read afterwards; regeneration
// builds a fresh snapshot instead of mutating.
type Dataset struct {
	GeneratedAt time.Time

	Plants    []Plant
	Lines     []Line
	Products  []Product
	Suppliers []Supplier

	Batches     []Batch
	TimeSeries  []TimeSeriesPoint
	Maintenance []MaintenanceEvent

	Seasonality    []SeasonalityCell
	ShiftMatrix    []ShiftCell
	SupplierImpact []SupplierImpact
	Correlation    []CorrelationCell
	CauseMap       CauseMap

	plantsByID    map[string]Plant
	linesByID     map[string]Line
	productsByID  map[string]Product
	suppliersByID map[string]Supplier
	batchesByID   map[string]*Batch
}

// index builds the lookup maps. Called once at the end of generation.
func (d *Dataset) index() {
	d.plantsByID = make(map[string]Plant, len(d.Plants))
	for _, p := range d.Plants {
		d.plantsByID[p.ID] = p
	}
	d.linesByID = make(map[string]Line, len(d.Lines))
	for _, l := range d.Lines {
		d.linesByID[l.ID] = l
	}
	d.productsByID = make(map[string]Product, len(d.Products))
	for _, p := range d.Products {
		d.productsByID[p.ID] = p
	}
	d.suppliersByID = make(map[string]Supplier, len(d.Suppliers))
	for _, s := range d.Suppliers {
		d.suppliersByID[s.ID] = s
	}
	d.batchesByID = make(map[string]*Batch, len(d.Batches))
	for i := range d.Batches {
		d.batchesByID[d.Batches[i].ID] = &d.Batches[i]
	}
}

// Plant returns the plant with the given id.
func (d *Dataset) Plant(id string) (Plant, bool) {
	p, ok := d.plantsByID[id]
	return p, ok
}

// Line returns the line with the given id.
func (d *Dataset) Line(id string) (Line, bool) {
	l, ok := d.linesByID[id]
	return l, ok
}

// Product returns the product with the given id.
func (d *Dataset) Product(id string) (Product, bool) {
	p, ok := d.productsByID[id]
	return p, ok
}

// Supplier returns the supplier with the given id.
func (d *Dataset) Supplier(id string) (Supplier, bool) {
	s, ok := d.suppliersByID[id]
	return s, ok
}

// Batch returns the batch with the given id.
func (d *Dataset) Batch(id string) (*Batch, bool) {
	b, ok := d.batchesByID[id]
	return b, ok
}
