package quality

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defect_library.yaml
var defectLibraryYAML []byte

// DefectKnowledge is one entry of the defect knowledge base.
type DefectKnowledge struct {
	Cause    string   `yaml:"cause"`
	Measures []string `yaml:"measures"`
	Risk     string   `yaml:"risk"`
}

type defectLibrary struct {
	Entries  map[string]DefectKnowledge `yaml:"entries"`
	Fallback DefectKnowledge            `yaml:"fallback"`
}

// library is parsed once at init. The YAML ships inside the binary, so a
// parse failure is a build defect and panicking is the right response.
var library = loadDefectLibrary()

func loadDefectLibrary() defectLibrary {
	var lib defectLibrary
	if err := yaml.Unmarshal(defectLibraryYAML, &lib); err != nil {
		panic(fmt.Sprintf("defect library: %v", err))
	}
	if len(lib.Entries) == 0 || lib.Fallback.Cause == "" || len(lib.Fallback.Measures) == 0 {
		panic("defect library: incomplete")
	}
	return lib
}

// LookupDefect returns the knowledge entry for a defect type, falling back
// to the generic entry for unknown types.
func LookupDefect(defectType string) DefectKnowledge {
	if entry, ok := library.Entries[defectType]; ok {
		return entry
	}
	return library.Fallback
}

// GetPrimaryDefect returns the defect entry with the highest count, or nil
// when the batch recorded no defects. Ties break toward the first-listed
// entry for determinism.
func GetPrimaryDefect(b Batch) *Defect {
	if len(b.Defects) == 0 {
		return nil
	}
	primary := b.Defects[0]
	for _, d := range b.Defects[1:] {
		if d.Count > primary.Count {
			primary = d
		}
	}
	return &primary
}

// AnalyzeBatch derives the decision-support bundle for a batch.
func AnalyzeBatch(b Batch) BatchAnalysis {
	primary := GetPrimaryDefect(b)

	knowledge := library.Fallback
	if primary != nil {
		knowledge = LookupDefect(primary.Type)
	}

	topDefect := "Kein dominanter Defekt"
	if primary != nil {
		topDefect = "Top-Defekt: " + primary.Type
	}

	summary := strings.Join([]string{
		fmt.Sprintf("Charge %s", b.ID),
		fmt.Sprintf("%.2f%% Fehlerrate", b.DefectRate),
		topDefect,
		"Zeit: " + b.Timestamp.Format("02.01. 15:04"),
	}, " · ")

	return BatchAnalysis{
		Severity: DetermineSeverity(b.DefectRate),
		Cause:    knowledge.Cause,
		Measures: knowledge.Measures,
		Risk:     knowledge.Risk,
		Summary:  summary,
	}
}

// BuildBatchViewModel joins a batch with master-data names and its analysis.
// Unresolvable references degrade to the raw id; enrichment never fails,
// since it only presents data the system itself generated.
func BuildBatchViewModel(ds *Dataset, b Batch) BatchViewModel {
	vm := BatchViewModel{
		Batch:        b,
		PlantName:    b.PlantID,
		LineName:     b.LineID,
		ProductName:  b.ProductID,
		SupplierName: b.SupplierID,
		Analysis:     AnalyzeBatch(b),
	}

	if ds != nil {
		if plant, ok := ds.Plant(b.PlantID); ok {
			vm.PlantName = plant.Name
		}
		if line, ok := ds.Line(b.LineID); ok {
			vm.LineName = line.Name
		}
		if product, ok := ds.Product(b.ProductID); ok {
			vm.ProductName = product.Name
		}
		if supplier, ok := ds.Supplier(b.SupplierID); ok {
			vm.SupplierName = supplier.Name
		}
	}

	if primary := GetPrimaryDefect(b); primary != nil {
		vm.PrimaryDefect = &primary.Type
	}
	return vm
}
