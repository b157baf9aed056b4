package quality

// Master data is fixed literal tables. The dataset generator references these
// and never invents ids outside of them.

// DefectTypes lists the known defect-type categories.
var DefectTypes = []string{"Verformung", "Nuss-Qualität", "Verpackung", "Gewicht", "Optik"}

// ProblemSupplierID marks the supplier biased toward higher defect rates.
const ProblemSupplierID = "S4"

// Plants returns the plant master table.
func Plants() []Plant {
	return []Plant{
		{ID: "P1", Name: "Werk Berlin", Location: "Berlin"},
		{ID: "P2", Name: "Werk Hamburg", Location: "Hamburg"},
	}
}

// Lines returns the line master table.
func Lines() []Line {
	return []Line{
		{ID: "L1", PlantID: "P1", Name: "Linie 1"},
		{ID: "L2", PlantID: "P1", Name: "Linie 2"},
		{ID: "L3", PlantID: "P2", Name: "Linie 3"},
		{ID: "L4", PlantID: "P2", Name: "Linie 4"},
	}
}

// Products returns the product master table.
func Products() []Product {
	return []Product{
		{ID: "PR1", Name: "Toffifee", Category: "Praline"},
		{ID: "PR2", Name: "Schaumküsse", Category: "Schaum"},
		{ID: "PR3", Name: "Knoppers", Category: "Waffel"},
	}
}

// Suppliers returns the supplier master table. S4 is the problem supplier.
func Suppliers() []Supplier {
	return []Supplier{
		{ID: "S1", Name: "Lieferant A", Material: "Nüsse"},
		{ID: "S2", Name: "Lieferant B", Material: "Schokolade"},
		{ID: "S3", Name: "Lieferant C", Material: "Karamell"},
		{ID: "S4", Name: "Lieferant X", Material: "Nüsse"},
		{ID: "S5", Name: "Lieferant D", Material: "Verpackung"},
	}
}
