package quality

import "fmt"

// Chart lookup tables consumed directly by the dashboard charts. These are
// literal or semi-random tables with no algorithmic content.

// monthLabels and weekdayLabels are the axis labels the frontend renders.
var (
	monthLabels   = []string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"}
	weekdayLabels = []string{"Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"}
)

// SeasonalityCell is one month × defect-type heatmap cell.
type SeasonalityCell struct {
	Month      string  `json:"month"`
	DefectType string  `json:"defectType"`
	Value      float64 `json:"value"`
}

// ShiftCell is one shift × weekday heatmap cell.
type ShiftCell struct {
	Shift   Shift   `json:"shift"`
	Weekday string  `json:"weekday"`
	Value   float64 `json:"value"`
}

// SupplierLot is one lot sample in the supplier impact chart.
type SupplierLot struct {
	LotNumber  string  `json:"lotNumber"`
	DefectRate float64 `json:"defectRate"`
}

// SupplierImpact is one supplier's median defect rate with lot scatter.
type SupplierImpact struct {
	Supplier         string        `json:"supplier"`
	SupplierID       string        `json:"supplierId"`
	MedianDefectRate float64       `json:"medianDefectRate"`
	Lots             []SupplierLot `json:"lots"`
}

// CorrelationCell is one factor-pair entry of the correlation matrix.
type CorrelationCell struct {
	Factor1     string  `json:"factor1"`
	Factor2     string  `json:"factor2"`
	Correlation float64 `json:"correlation"`
}

// CauseNode is a node in the cause-effect graph.
type CauseNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"` // cause or effect
}

// CauseEdge is a weighted cause-effect relation with a textual explanation
// and a 1-3 star confidence rating.
type CauseEdge struct {
	Source      string  `json:"source"`
	Target      string  `json:"target"`
	Strength    float64 `json:"strength"`
	Explanation string  `json:"explanation"`
	Confidence  int     `json:"confidence"`
}

// CauseMap is the fixed cause-effect graph.
type CauseMap struct {
	Nodes []CauseNode `json:"nodes"`
	Edges []CauseEdge `json:"edges"`
}

// generateSeasonality builds the month × defect-type heatmap. Verformung
// spikes in summer, Verpackung in winter (condensation).
func generateSeasonality() []SeasonalityCell {
	cells := make([]SeasonalityCell, 0, len(monthLabels)*len(DefectTypes))

	for monthIdx, month := range monthLabels {
		for _, defectType := range DefectTypes {
			value := uniform(1.5, 3)

			if defectType == "Verformung" && monthIdx >= 5 && monthIdx <= 7 {
				value += 2
			}
			if defectType == "Verpackung" && (monthIdx <= 1 || monthIdx >= 11) {
				value += 1
			}

			cells = append(cells, SeasonalityCell{
				Month:      month,
				DefectType: defectType,
				Value:      round2(value),
			})
		}
	}
	return cells
}

// generateShiftMatrix builds the shift × weekday heatmap.
func generateShiftMatrix() []ShiftCell {
	cells := make([]ShiftCell, 0, len(Shifts)*len(weekdayLabels))

	for _, shift := range Shifts {
		for dayIdx, weekday := range weekdayLabels {
			value := 2.5

			if shift == ShiftNight {
				value += 0.8
			}
			if dayIdx >= 5 {
				value += 0.5
			}
			if dayIdx == 4 {
				// Friday effect
				value += 0.3
			}

			cells = append(cells, ShiftCell{
				Shift:   shift,
				Weekday: weekday,
				Value:   round2(value + uniform(-0.3, 0.3)),
			})
		}
	}
	return cells
}

// generateSupplierImpact builds per-supplier medians with 8-15 lot samples.
func generateSupplierImpact(suppliers []Supplier) []SupplierImpact {
	impact := make([]SupplierImpact, 0, len(suppliers))

	for _, supplier := range suppliers {
		median := uniform(2, 3.5)
		if supplier.ID == ProblemSupplierID {
			median = uniform(5, 7)
		}

		lots := make([]SupplierLot, uniformInt(8, 15))
		for i := range lots {
			rate := median + uniform(-1.5, 1.5)
			if rate < 0 {
				rate = 0
			}
			lots[i] = SupplierLot{
				LotNumber:  fmt.Sprintf("%s-L%03d", supplier.ID, i+1),
				DefectRate: rate,
			}
		}

		impact = append(impact, SupplierImpact{
			Supplier:         supplier.Name,
			SupplierID:       supplier.ID,
			MedianDefectRate: round2(median),
			Lots:             lots,
		})
	}
	return impact
}

// correlationMatrix returns the fixed symmetric factor correlation table.
func correlationMatrix() []CorrelationCell {
	factors := []string{"Saison", "Schicht", "Linie", "Wartung", "Lieferant", "Ausbringung"}
	values := map[[2]string]float64{
		{"Saison", "Schicht"}:      0.15,
		{"Saison", "Linie"}:        0.08,
		{"Saison", "Wartung"}:      0.22,
		{"Saison", "Lieferant"}:    0.12,
		{"Saison", "Ausbringung"}:  0.18,
		{"Schicht", "Linie"}:       0.05,
		{"Schicht", "Wartung"}:     0.10,
		{"Schicht", "Lieferant"}:   0.03,
		{"Schicht", "Ausbringung"}: 0.25,
		{"Linie", "Wartung"}:       0.45,
		{"Linie", "Lieferant"}:     0.12,
		{"Linie", "Ausbringung"}:   0.15,
		{"Wartung", "Lieferant"}:   0.08,
		{"Wartung", "Ausbringung"}: 0.32,
		{"Lieferant", "Ausbringung"}: 0.20,
	}

	lookup := func(a, b string) float64 {
		if a == b {
			return 1
		}
		if v, ok := values[[2]string{a, b}]; ok {
			return v
		}
		return values[[2]string{b, a}]
	}

	cells := make([]CorrelationCell, 0, len(factors)*len(factors))
	for _, f1 := range factors {
		for _, f2 := range factors {
			cells = append(cells, CorrelationCell{
				Factor1:     f1,
				Factor2:     f2,
				Correlation: lookup(f1, f2),
			})
		}
	}
	return cells
}

// causeMap returns the fixed 7-node, 6-edge cause-effect graph.
func causeMap() CauseMap {
	return CauseMap{
		Nodes: []CauseNode{
			{ID: "summer", Label: "Sommer-Hitze", Type: "cause"},
			{ID: "night", Label: "Nachtschicht", Type: "cause"},
			{ID: "supplierX", Label: "Lieferant X", Type: "cause"},
			{ID: "highOutput", Label: "Hohe Ausbringung", Type: "cause"},
			{ID: "deformation", Label: "Verformung", Type: "effect"},
			{ID: "nutQuality", Label: "Nuss-Qualität", Type: "effect"},
			{ID: "defectRate", Label: "Erhöhte Fehlerrate", Type: "effect"},
		},
		Edges: []CauseEdge{
			{
				Source: "summer", Target: "deformation", Strength: 0.8,
				Explanation: "Höhere Temperaturen führen zu Karamell-Verformung",
				Confidence:  3,
			},
			{
				Source: "deformation", Target: "defectRate", Strength: 0.7,
				Explanation: "Verformungen erhöhen die Gesamtfehlerrate",
				Confidence:  3,
			},
			{
				Source: "supplierX", Target: "nutQuality", Strength: 0.85,
				Explanation: "Lieferant X liefert sporadisch minderwertige Nüsse",
				Confidence:  2,
			},
			{
				Source: "nutQuality", Target: "defectRate", Strength: 0.65,
				Explanation: "Nuss-Probleme tragen zur Fehlerrate bei",
				Confidence:  3,
			},
			{
				Source: "night", Target: "defectRate", Strength: 0.5,
				Explanation: "Nachtschicht zeigt leicht erhöhte Fehlerrate",
				Confidence:  2,
			},
			{
				Source: "highOutput", Target: "defectRate", Strength: 0.45,
				Explanation: "Hohe Produktionsgeschwindigkeit korreliert mit mehr Fehlern",
				Confidence:  2,
			},
		},
	}
}
